package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	clienterrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/client/errors"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/events"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"
	workerrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dueDateLayout = "2006-01-02"

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (CreateClientResponse, error)
	GetAll(ctx context.Context) ([]ClientResponse, error)
	Search(ctx context.Context, term string) ([]ClientResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	workRepo     work.Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	workRepo work.Repository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, workRepo, employeeRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	workRepo work.Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		workRepo:     workRepo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

// Create onboards a client together with its initial work items in one
// transaction. Either everything lands or nothing does.
func (s *service) Create(ctx context.Context, req CreateClientRequest) (CreateClientResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create client requested",
		zap.String("request_id", rid),
		zap.String("employee_name", req.EmployeeName),
	)

	empl, err := s.employeeRepo.FindByName(ctx, req.EmployeeName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CreateClientResponse{}, clienterrors.ErrOnboardingEmployeeNotFound(req.EmployeeName)
		}
		return CreateClientResponse{}, err
	}

	items, err := parseWorks(req.Works)
	if err != nil {
		return CreateClientResponse{}, clienterrors.ErrInvalidWorksPayload
	}

	cl := &Client{
		ID:            uuid.New(),
		Name:          req.Name,
		BusinessName:  req.BusinessName,
		PANNumber:     req.PANNumber,
		GSTINNo:       req.GSTINNo,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		ReferenceName: req.ReferenceName,
		EmailID:       req.EmailID,
		AadharNumber:  req.AadharNumber,
		ClientPic:     req.ClientPic,
		EmployeeID:    empl.ID,
		EmployeeName:  empl.Name,
	}

	now := time.Now().UTC()
	works := make([]work.Work, len(items))
	for i, item := range items {
		pending := item.DocumentsPending()

		var dueDate *time.Time
		if v := strings.TrimSpace(item.DueDate); v != "" {
			d, err := parseDueDate(v)
			if err != nil {
				return CreateClientResponse{}, workerrors.ErrInvalidDate
			}
			dueDate = &d
		}

		works[i] = work.Work{
			ID:               uuid.New(),
			WorkDescription:  item.WorkDescription,
			WorkAssignedDate: now,
			PendingDocuments: pending,
			Status:           work.DeriveStatus(pending),
			EmployeeID:       empl.ID,
			ClientID:         cl.ID,
			DueDate:          dueDate,
			FeeEstimation:    item.Fee(),
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CreateClientResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, cl); err != nil {
		s.logger.Error("create client persist failed", zap.Error(err))
		return CreateClientResponse{}, err
	}

	if len(works) > 0 {
		if err := s.workRepo.WithTx(tx).BulkCreate(ctx, works); err != nil {
			s.logger.Error("create initial works failed", zap.Error(err))
			return CreateClientResponse{}, err
		}
	}

	if s.outbox != nil {
		for _, w := range works {
			event := events.WorkCreatedEvent{
				EventType:  "work_created",
				RequestID:  rid,
				WorkID:     w.ID.String(),
				ClientID:   w.ClientID.String(),
				EmployeeID: w.EmployeeID.String(),
				Status:     w.Status,
				OccurredAt: now,
			}
			if err := s.enqueueEvent(ctx, tx, w.ID.String(), event); err != nil {
				return CreateClientResponse{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return CreateClientResponse{}, err
	}

	s.logger.Info("client created",
		zap.String("request_id", rid),
		zap.String("client_id", cl.ID.String()),
		zap.Int("initial_works", len(works)),
	)

	workResps := make([]work.WorkResponse, len(works))
	for i, w := range works {
		workResps[i] = work.NewWorkResponse(w)
	}

	return CreateClientResponse{
		Message: "Client and works added successfully",
		Client:  mapToResponse(*cl),
		Works:   workResps,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		resp[i] = mapToResponse(cl)
	}
	return resp, nil
}

// Search matches names case-insensitively on a substring. No match is an
// empty result, never an error.
func (s *service) Search(ctx context.Context, term string) ([]ClientResponse, error) {
	clients, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	resp := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		resp[i] = mapToResponse(cl)
	}
	return resp, nil
}

// Exists satisfies the lookup the work lifecycle depends on.
func (s *service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, workID string, event events.WorkCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "work",
		AggregateID:   workID,
		EventType:     event.EventType,
		Topic:         events.WorkLifecycleTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseWorks(raw string) ([]InitialWorkItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var items []InitialWorkItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func parseDueDate(v string) (time.Time, error) {
	if t, err := time.Parse(dueDateLayout, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func mapToResponse(cl Client) ClientResponse {
	return ClientResponse{
		ID:            cl.ID.String(),
		Name:          cl.Name,
		BusinessName:  cl.BusinessName,
		PANNumber:     cl.PANNumber,
		GSTINNo:       cl.GSTINNo,
		Address:       cl.Address,
		PhoneNumber:   cl.PhoneNumber,
		ReferenceName: cl.ReferenceName,
		EmailID:       cl.EmailID,
		AadharNumber:  cl.AadharNumber,
		ClientPic:     cl.ClientPic,
		EmployeeID:    cl.EmployeeID.String(),
		EmployeeName:  cl.EmployeeName,
	}
}
