package work_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee"
	employeeMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee/mock"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/events"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka"
	kafkaMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka/mock"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"
	workerrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work/errors"
	workMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeClientLookup struct {
	exists bool
	err    error
}

func (f *fakeClientLookup) Exists(ctx context.Context, id string) (bool, error) {
	return f.exists, f.err
}

type workServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  work.Service
	repo     *workMock.MockRepository
	clients  *fakeClientLookup
	employee *employeeMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
}

func setupWorkService(t *testing.T, cfg work.Config) *workServiceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := workMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)
	clients := &fakeClientLookup{exists: true}

	svc := work.NewServiceWithOutbox(db, repo, clients, employeeRepo, outboxRepo, cfg)

	return &workServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		clients:  clients,
		employee: employeeRepo,
		outbox:   outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestWorkService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("pending documents gate the status", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		clientID := uuid.New().String()
		employeeID := uuid.New()

		deps.employee.EXPECT().
			FindByID(ctx, employeeID.String()).
			Return(&employee.Employee{ID: employeeID, Name: "Anand"}, nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *work.Work) error {
				assert.Equal(t, work.StatusPendingDocuments, w.Status)
				assert.True(t, w.PendingDocuments)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, work.CreateWorkRequest{
			ClientID:         clientID,
			EmployeeID:       employeeID.String(),
			WorkDescription:  "GST filing",
			PendingDocuments: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, work.StatusPendingDocuments, resp.Status)
		assert.False(t, resp.IsPaid)
	})

	t.Run("no pending documents starts in progress", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		employeeID := uuid.New()
		deps.employee.EXPECT().
			FindByID(ctx, employeeID.String()).
			Return(&employee.Employee{ID: employeeID}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *work.Work) error {
				assert.Equal(t, work.StatusInProgress, w.Status)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, work.CreateWorkRequest{
			ClientID:   uuid.New().String(),
			EmployeeID: employeeID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, work.StatusInProgress, resp.Status)
	})

	t.Run("unknown client -> 404", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()
		deps.clients.exists = false

		_, err := deps.service.Create(ctx, work.CreateWorkRequest{
			ClientID:   uuid.New().String(),
			EmployeeID: uuid.New().String(),
		})

		assert.ErrorIs(t, err, workerrors.ErrClientNotFound)
	})

	t.Run("unknown employee -> 404", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		employeeID := uuid.New().String()
		deps.employee.EXPECT().
			FindByID(ctx, employeeID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, work.CreateWorkRequest{
			ClientID:   uuid.New().String(),
			EmployeeID: employeeID,
		})

		assert.ErrorIs(t, err, workerrors.ErrEmployeeNotFound)
	})

	t.Run("outbox event carries the request id", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		rid := "REQ-42"
		ridCtx := contextutil.WithRequestID(context.Background(), rid)

		employeeID := uuid.New()
		deps.employee.EXPECT().
			FindByID(gomock.Any(), employeeID.String()).
			Return(&employee.Employee{ID: employeeID}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), matchOutboxRID(rid)).
			Return(nil)

		_, err := deps.service.Create(ridCtx, work.CreateWorkRequest{
			ClientID:   uuid.New().String(),
			EmployeeID: employeeID.String(),
		})

		assert.NoError(t, err)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		employeeID := uuid.New()
		deps.employee.EXPECT().
			FindByID(ctx, employeeID.String()).
			Return(&employee.Employee{ID: employeeID}, nil)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, work.CreateWorkRequest{
			ClientID:   uuid.New().String(),
			EmployeeID: employeeID.String(),
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestWorkService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("status written verbatim", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&work.Work{ID: id, Status: work.StatusInProgress, WorkAssignedDate: time.Now()}, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *work.Work) error {
				assert.Equal(t, "waiting on client", w.Status)
				return nil
			})

		resp, err := deps.service.UpdateStatus(ctx, id.String(), work.UpdateWorkRequest{
			Status: "waiting on client",
		})

		assert.NoError(t, err)
		assert.Equal(t, "waiting on client", resp.Status)
	})

	t.Run("completed without date stamps now when policy enabled", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&work.Work{ID: id, Status: work.StatusInProgress, WorkAssignedDate: time.Now()}, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *work.Work) error {
				assert.NotNil(t, w.WorkCompletedDate)
				return nil
			})

		resp, err := deps.service.UpdateStatus(ctx, id.String(), work.UpdateWorkRequest{
			Status: work.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.WorkCompletedDate)
	})

	t.Run("completed without date stays unset when policy disabled", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: false})
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&work.Work{ID: id, Status: work.StatusInProgress, WorkAssignedDate: time.Now()}, nil)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *work.Work) error {
				assert.Nil(t, w.WorkCompletedDate)
				return nil
			})

		resp, err := deps.service.UpdateStatus(ctx, id.String(), work.UpdateWorkRequest{
			Status: work.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.WorkCompletedDate)
	})

	t.Run("unknown work -> 404", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, id, work.UpdateWorkRequest{Status: "completed"})

		assert.ErrorIs(t, err, workerrors.ErrWorkNotFound)
	})
}

func TestWorkService_SubmitBill(t *testing.T) {
	ctx := context.Background()

	t.Run("billing formula applied and marked paid", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		id := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			UpdateBilling(ctx, id.String(), 1000.0, 10.0, 900.0).
			Return(int64(1), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&work.Work{
				ID: id, WorkAssignedDate: time.Now(),
				Amount: 1000, Discount: 10, TotalBill: 900, IsPaid: true,
			}, nil)

		resp, err := deps.service.SubmitBill(ctx, work.SubmitBillRequest{
			WorkID:   id.String(),
			Amount:   1000,
			Discount: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, 900.0, resp.TotalBill)
		assert.True(t, resp.IsPaid)
	})

	t.Run("no rows updated -> 404", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		id := uuid.New().String()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			UpdateBilling(ctx, id, 500.0, 0.0, 500.0).
			Return(int64(0), nil)

		_, err := deps.service.SubmitBill(ctx, work.SubmitBillRequest{
			WorkID: id,
			Amount: 500,
		})

		assert.ErrorIs(t, err, workerrors.ErrWorkNotFound)
	})
}

func TestWorkService_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("date window widened to whole days", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		deps.repo.EXPECT().
			Report(ctx, gomock.Any(), gomock.Any(), "completed").
			DoAndReturn(func(ctx context.Context, from, to *time.Time, status string) ([]work.ReportRecord, error) {
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *from)
				assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.UTC), *to)
				return []work.ReportRecord{{
					ClientName:       "Anand Traders",
					EmployeeName:     "Priya",
					WorkAssignedDate: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
					Status:           "completed",
					WorkDescription:  "ITR filing",
				}}, nil
			})

		rows, err := deps.service.Report(ctx, work.ReportQuery{
			Status:   "completed",
			FromDate: "2024-01-01",
			ToDate:   "2024-01-31",
		})

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "15/01/2024", rows[0].WorkAssignedDate)
	})

	t.Run("all sentinel clears the status filter", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		deps.repo.EXPECT().
			Report(ctx, nil, nil, "").
			Return(nil, nil)

		_, err := deps.service.Report(ctx, work.ReportQuery{Status: work.StatusFilterAll})

		assert.NoError(t, err)
	})

	t.Run("no matches is an empty list, not an error", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		deps.repo.EXPECT().
			Report(ctx, nil, nil, "").
			Return([]work.ReportRecord{}, nil)

		rows, err := deps.service.Report(ctx, work.ReportQuery{})

		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Len(t, rows, 0)
	})

	t.Run("bad date -> 400", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		_, err := deps.service.Report(ctx, work.ReportQuery{FromDate: "01-01-2024"})

		assert.ErrorIs(t, err, workerrors.ErrInvalidDate)
	})
}

func TestWorkService_GetByClient(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown client -> 404", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()
		deps.clients.exists = false

		_, err := deps.service.GetByClient(ctx, uuid.New().String())

		assert.ErrorIs(t, err, workerrors.ErrClientNotFound)
	})

	t.Run("rows carry the assigned employee", func(t *testing.T) {
		deps := setupWorkService(t, work.Config{AutocompleteDate: true})
		defer deps.db.Close()

		clientID := uuid.New()
		deps.repo.EXPECT().
			FindByClient(ctx, clientID.String()).
			Return([]work.WorkWithEmployee{{
				Work:         work.Work{ID: uuid.New(), ClientID: clientID, WorkAssignedDate: time.Now()},
				EmployeeName: "Priya",
				EmployeeCode: "EMP-000001",
			}}, nil)

		rows, err := deps.service.GetByClient(ctx, clientID.String())

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Priya", rows[0].EmployeeName)
		assert.Equal(t, "EMP-000001", rows[0].EmployeeCode)
	})
}

type outboxRIDMatcher struct {
	rid string
}

func (m outboxRIDMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok || event.RequestID != m.rid {
		return false
	}

	var payload events.WorkCreatedEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}
	return payload.RequestID == m.rid
}

func (m outboxRIDMatcher) String() string {
	return "matches outbox event with request_id " + m.rid
}

func matchOutboxRID(rid string) gomock.Matcher {
	return outboxRIDMatcher{rid: rid}
}
