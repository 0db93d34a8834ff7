package work

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/events"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"
	workerrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	reportDateLayout   = "2006-01-02"
	displayDateLayout  = "02/01/2006"
	responseDateLayout = time.RFC3339
)

// ClientLookup is the minimal client access the lifecycle needs; it keeps
// this package from importing the client package (which imports this one
// for bulk work creation).
type ClientLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Config carries the lifecycle policy that the source system left
// ambiguous: whether forcing a work to "completed" without a completion
// date stamps the current time.
type Config struct {
	AutocompleteDate bool
}

func ConfigFromEnv() Config {
	cfg := Config{AutocompleteDate: true}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("WORK_AUTOCOMPLETE_DATE"))); v == "false" || v == "0" {
		cfg.AutocompleteDate = false
	}
	return cfg
}

//go:generate mockgen -source=work_service.go -destination=mock/work_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWorkRequest) (WorkResponse, error)
	UpdateStatus(ctx context.Context, workID string, req UpdateWorkRequest) (WorkResponse, error)
	SubmitBill(ctx context.Context, req SubmitBillRequest) (WorkResponse, error)
	GetByClient(ctx context.Context, clientID string) ([]ClientWorkResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]EmployeeWorkResponse, error)
	GetUnpaidByClient(ctx context.Context, clientID string) ([]WorkResponse, error)
	Report(ctx context.Context, q ReportQuery) ([]ReportRow, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	clients      ClientLookup
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	cfg          Config
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	clients ClientLookup,
	employeeRepo employee.Repository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, clients, employeeRepo, nil, cfg, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	clients ClientLookup,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("work.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("work.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		clients:      clients,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		cfg:          cfg,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, req CreateWorkRequest) (WorkResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create work requested",
		zap.String("request_id", rid),
		zap.String("client_id", req.ClientID),
		zap.String("employee_id", req.EmployeeID),
	)

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return WorkResponse{}, workerrors.ErrClientNotFound
	}
	exists, err := s.clients.Exists(ctx, clientID.String())
	if err != nil {
		return WorkResponse{}, err
	}
	if !exists {
		return WorkResponse{}, workerrors.ErrClientNotFound
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return WorkResponse{}, workerrors.ErrEmployeeNotFound
	}
	if _, err := s.employeeRepo.FindByID(ctx, employeeID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkResponse{}, workerrors.ErrEmployeeNotFound
		}
		return WorkResponse{}, err
	}

	assignedDate := time.Now().UTC()
	if req.WorkAssignedDate != "" {
		assignedDate, err = parseDate(req.WorkAssignedDate)
		if err != nil {
			return WorkResponse{}, workerrors.ErrInvalidDate
		}
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := parseDate(req.DueDate)
		if err != nil {
			return WorkResponse{}, workerrors.ErrInvalidDate
		}
		dueDate = &d
	}

	w := &Work{
		ID:               uuid.New(),
		WorkDescription:  req.WorkDescription,
		WorkAssignedDate: assignedDate,
		PendingDocuments: req.PendingDocuments,
		Status:           DeriveStatus(req.PendingDocuments),
		EmployeeID:       employeeID,
		ClientID:         clientID,
		DueDate:          dueDate,
		FeeEstimation:    req.FeeEstimation,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, w); err != nil {
		s.logger.Error("create work persist failed", zap.Error(err))
		return WorkResponse{}, err
	}

	if s.outbox != nil {
		event := events.WorkCreatedEvent{
			EventType:  "work_created",
			RequestID:  rid,
			WorkID:     w.ID.String(),
			ClientID:   w.ClientID.String(),
			EmployeeID: w.EmployeeID.String(),
			Status:     w.Status,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, w.ID.String(), event.EventType, events.WorkLifecycleTopic, event); err != nil {
			return WorkResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return WorkResponse{}, err
	}

	s.logger.Info("work created",
		zap.String("request_id", rid),
		zap.String("work_id", w.ID.String()),
		zap.String("status", w.Status),
	)

	return NewWorkResponse(*w), nil
}

func (s *service) UpdateStatus(ctx context.Context, workID string, req UpdateWorkRequest) (WorkResponse, error) {
	id, err := uuid.Parse(workID)
	if err != nil {
		return WorkResponse{}, workerrors.ErrWorkNotFound
	}

	w, err := s.repo.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkResponse{}, workerrors.ErrWorkNotFound
		}
		return WorkResponse{}, err
	}

	// Any supplied status is written verbatim; there is no transition
	// guard on the status field.
	if req.Status != "" {
		w.Status = req.Status
	}

	if req.WorkCompletedDate != "" {
		d, err := parseDate(req.WorkCompletedDate)
		if err != nil {
			return WorkResponse{}, workerrors.ErrInvalidDate
		}
		w.WorkCompletedDate = &d
	}

	if w.Status == StatusCompleted && w.WorkCompletedDate == nil && s.cfg.AutocompleteDate {
		now := time.Now().UTC()
		w.WorkCompletedDate = &now
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return WorkResponse{}, err
	}

	return NewWorkResponse(*w), nil
}

func (s *service) SubmitBill(ctx context.Context, req SubmitBillRequest) (WorkResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	id, err := uuid.Parse(req.WorkID)
	if err != nil {
		return WorkResponse{}, workerrors.ErrWorkNotFound
	}

	totalBill := ComputeTotalBill(req.Amount, req.Discount)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rows, err := qtx.UpdateBilling(ctx, id.String(), req.Amount, req.Discount, totalBill)
	if err != nil {
		s.logger.Error("submit bill update failed", zap.Error(err))
		return WorkResponse{}, err
	}
	if rows == 0 {
		return WorkResponse{}, workerrors.ErrWorkNotFound
	}

	if s.outbox != nil {
		event := events.BillSubmittedEvent{
			EventType:  "bill_submitted",
			RequestID:  rid,
			WorkID:     id.String(),
			Amount:     req.Amount,
			Discount:   req.Discount,
			TotalBill:  totalBill,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, id.String(), event.EventType, events.WorkLifecycleTopic, event); err != nil {
			return WorkResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return WorkResponse{}, err
	}

	s.logger.Info("bill submitted",
		zap.String("request_id", rid),
		zap.String("work_id", id.String()),
		zap.Float64("total_bill", totalBill),
	)

	w, err := s.repo.FindByID(ctx, id.String())
	if err != nil {
		return WorkResponse{}, err
	}

	return NewWorkResponse(*w), nil
}

func (s *service) GetByClient(ctx context.Context, clientID string) ([]ClientWorkResponse, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, workerrors.ErrClientNotFound
	}

	exists, err := s.clients.Exists(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, workerrors.ErrClientNotFound
	}

	rows, err := s.repo.FindByClient(ctx, id.String())
	if err != nil {
		return nil, err
	}

	resp := make([]ClientWorkResponse, len(rows))
	for i, row := range rows {
		resp[i] = ClientWorkResponse{
			WorkResponse: NewWorkResponse(row.Work),
			EmployeeName: row.EmployeeName,
			EmployeeCode: row.EmployeeCode,
		}
	}

	return resp, nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]EmployeeWorkResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeWorkResponse, len(rows))
	for i, row := range rows {
		resp[i] = EmployeeWorkResponse{
			WorkResponse: NewWorkResponse(row.Work),
			ClientName:   row.ClientName,
		}
	}

	return resp, nil
}

func (s *service) GetUnpaidByClient(ctx context.Context, clientID string) ([]WorkResponse, error) {
	works, err := s.repo.FindUnpaidByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := make([]WorkResponse, len(works))
	for i, w := range works {
		resp[i] = NewWorkResponse(w)
	}

	return resp, nil
}

// Report filters on an inclusive assigned-date window (bounds widened to
// whole days) and an optional exact status. No rows is a valid, empty
// result, never an error.
func (s *service) Report(ctx context.Context, q ReportQuery) ([]ReportRow, error) {
	var from, to *time.Time

	if v := strings.TrimSpace(q.FromDate); v != "" {
		d, err := time.Parse(reportDateLayout, v)
		if err != nil {
			return nil, workerrors.ErrInvalidDate
		}
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		from = &start
	}

	if v := strings.TrimSpace(q.ToDate); v != "" {
		d, err := time.Parse(reportDateLayout, v)
		if err != nil {
			return nil, workerrors.ErrInvalidDate
		}
		end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, time.UTC)
		to = &end
	}

	status := strings.TrimSpace(q.Status)
	if status == StatusFilterAll {
		status = ""
	}

	records, err := s.repo.Report(ctx, from, to, status)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, len(records))
	for i, rec := range records {
		rows[i] = ReportRow{
			ClientName:       rec.ClientName,
			EmployeeName:     rec.EmployeeName,
			WorkAssignedDate: rec.WorkAssignedDate.Format(displayDateLayout),
			Status:           rec.Status,
			WorkDescription:  rec.WorkDescription,
		}
	}

	return rows, nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, aggregateID, eventType, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "work",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(reportDateLayout, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(responseDateLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// NewWorkResponse maps a stored work row to its wire shape. The client
// package reuses it when echoing back onboarding works.
func NewWorkResponse(w Work) WorkResponse {
	resp := WorkResponse{
		ID:               w.ID.String(),
		WorkDescription:  w.WorkDescription,
		WorkAssignedDate: w.WorkAssignedDate.Format(responseDateLayout),
		PendingDocuments: w.PendingDocuments,
		Status:           w.Status,
		EmployeeID:       w.EmployeeID.String(),
		ClientID:         w.ClientID.String(),
		FeeEstimation:    w.FeeEstimation,
		Amount:           w.Amount,
		Discount:         w.Discount,
		TotalBill:        w.TotalBill,
		IsPaid:           w.IsPaid,
	}
	if w.WorkCompletedDate != nil {
		resp.WorkCompletedDate = w.WorkCompletedDate.Format(responseDateLayout)
	}
	if w.DueDate != nil {
		resp.DueDate = w.DueDate.Format(responseDateLayout)
	}
	return resp
}
