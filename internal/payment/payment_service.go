package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/events"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka"
	paymenterrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/payment/errors"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const paymentDateLayout = time.RFC3339

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req AddPaymentRequest) (PaymentResponse, error)
	GetByClient(ctx context.Context, clientID string) ([]PaymentHistoryRow, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	workRepo work.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	workRepo work.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, workRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	workRepo work.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		workRepo: workRepo,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// Add records a payment line item and re-derives the paid flag on the
// referenced work from the running payment total, all in one transaction.
func (s *service) Add(ctx context.Context, req AddPaymentRequest) (PaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return PaymentResponse{}, paymenterrors.ErrWorkNotFound
	}
	workID, err := uuid.Parse(req.WorkID)
	if err != nil {
		return PaymentResponse{}, paymenterrors.ErrWorkNotFound
	}

	w, err := s.workRepo.FindByID(ctx, workID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentResponse{}, paymenterrors.ErrWorkNotFound
		}
		return PaymentResponse{}, err
	}

	p := &Payment{
		ID:                 uuid.New(),
		ClientID:           clientID,
		WorkID:             workID,
		Amount:             req.Amount,
		DiscountPercentage: req.Discount,
		TotalBill:          work.ComputeTotalBill(req.Amount, req.Discount),
		PaymentDate:        time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("record payment failed", zap.Error(err))
		return PaymentResponse{}, err
	}

	// The work is paid once post-discount receipts cover its own total
	// bill. A work billed at zero counts as paid by the first payment.
	received, err := qtx.SumByWork(ctx, workID.String())
	if err != nil {
		return PaymentResponse{}, err
	}
	if received >= w.TotalBill {
		if _, err := s.workRepo.WithTx(tx).SetPaid(ctx, workID.String(), true); err != nil {
			return PaymentResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.PaymentRecordedEvent{
			EventType:  "payment_recorded",
			RequestID:  rid,
			PaymentID:  p.ID.String(),
			WorkID:     workID.String(),
			ClientID:   clientID.String(),
			TotalBill:  p.TotalBill,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, event); err != nil {
			return PaymentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PaymentResponse{}, err
	}

	s.logger.Info("payment recorded",
		zap.String("request_id", rid),
		zap.String("payment_id", p.ID.String()),
		zap.String("work_id", workID.String()),
		zap.Float64("total_bill", p.TotalBill),
	)

	return mapToResponse(*p), nil
}

// GetByClient returns the payment history joined with work descriptions.
// An empty history is reported as not found, matching the frontend's
// expectation.
func (s *service) GetByClient(ctx context.Context, clientID string) ([]PaymentHistoryRow, error) {
	rows, err := s.repo.FindByClientWithWork(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, paymenterrors.ErrNoPaymentsFound
	}

	resp := make([]PaymentHistoryRow, len(rows))
	for i, row := range rows {
		resp[i] = PaymentHistoryRow{
			WorkDescription:    row.WorkDescription,
			Amount:             row.Amount,
			DiscountPercentage: row.DiscountPercentage,
			TotalBill:          row.TotalBill,
			PaymentDate:        row.PaymentDate.Format(paymentDateLayout),
		}
	}
	return resp, nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, event events.PaymentRecordedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payment",
		AggregateID:   event.PaymentID,
		EventType:     event.EventType,
		Topic:         events.PaymentRecordedTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID.String(),
		ClientID:           p.ClientID.String(),
		WorkID:             p.WorkID.String(),
		Amount:             p.Amount,
		DiscountPercentage: p.DiscountPercentage,
		TotalBill:          p.TotalBill,
		PaymentDate:        p.PaymentDate.Format(paymentDateLayout),
	}
}
