package counter_test

import (
	"context"
	"testing"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCountersTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS counters").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, counter.EnsureCountersTable(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
