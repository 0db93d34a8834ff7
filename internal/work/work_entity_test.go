package work_test

import (
	"testing"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, work.StatusPendingDocuments, work.DeriveStatus(true))
	assert.Equal(t, work.StatusInProgress, work.DeriveStatus(false))
}

func TestComputeTotalBill(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		discount float64
		want     float64
	}{
		{"no discount", 1000, 0, 1000},
		{"ten percent", 1000, 10, 900},
		{"full discount", 1000, 100, 0},
		{"zero amount", 0, 50, 0},
		{"fractional", 250, 12.5, 218.75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, work.ComputeTotalBill(tc.amount, tc.discount), 1e-9)
		})
	}
}
