package payment_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	kafkaMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/messaging/kafka/mock"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/payment"
	paymenterrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/payment/errors"
	paymentMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/payment/mock"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work"
	workMock "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/work/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type paymentServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  payment.Service
	repo     *paymentMock.MockRepository
	workRepo *workMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
}

func setupPaymentService(t *testing.T) *paymentServiceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := paymentMock.NewMockRepository(ctrl)
	workRepo := workMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := payment.NewServiceWithOutbox(db, repo, workRepo, outboxRepo)

	return &paymentServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		workRepo: workRepo,
		outbox:   outboxRepo,
	}
}

func TestPaymentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("same discount formula as bill submission", func(t *testing.T) {
		deps := setupPaymentService(t)
		defer deps.db.Close()

		workID := uuid.New()
		clientID := uuid.New()

		deps.workRepo.EXPECT().
			FindByID(ctx, workID.String()).
			Return(&work.Work{ID: workID, ClientID: clientID, TotalBill: 900, WorkAssignedDate: time.Now()}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *payment.Payment) error {
				assert.Equal(t, work.ComputeTotalBill(1000, 10), p.TotalBill)
				assert.Equal(t, 900.0, p.TotalBill)
				assert.False(t, p.PaymentDate.IsZero())
				return nil
			})

		// Post-discount receipts cover the bill, so the work flips to paid.
		deps.repo.EXPECT().SumByWork(ctx, workID.String()).Return(900.0, nil)
		deps.workRepo.EXPECT().WithTx(gomock.Any()).Return(deps.workRepo)
		deps.workRepo.EXPECT().SetPaid(ctx, workID.String(), true).Return(int64(1), nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Add(ctx, payment.AddPaymentRequest{
			ClientID: clientID.String(),
			WorkID:   workID.String(),
			Amount:   1000,
			Discount: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, 900.0, resp.TotalBill)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("partial payment leaves the work unpaid", func(t *testing.T) {
		deps := setupPaymentService(t)
		defer deps.db.Close()

		workID := uuid.New()
		clientID := uuid.New()

		deps.workRepo.EXPECT().
			FindByID(ctx, workID.String()).
			Return(&work.Work{ID: workID, ClientID: clientID, TotalBill: 1000, WorkAssignedDate: time.Now()}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SumByWork(ctx, workID.String()).Return(400.0, nil)
		// No SetPaid expectation: 400 < 1000.

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Add(ctx, payment.AddPaymentRequest{
			ClientID: clientID.String(),
			WorkID:   workID.String(),
			Amount:   400,
		})

		assert.NoError(t, err)
	})

	t.Run("discount portion does not count toward the bill", func(t *testing.T) {
		deps := setupPaymentService(t)
		defer deps.db.Close()

		workID := uuid.New()
		clientID := uuid.New()

		deps.workRepo.EXPECT().
			FindByID(ctx, workID.String()).
			Return(&work.Work{ID: workID, ClientID: clientID, TotalBill: 900, WorkAssignedDate: time.Now()}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *payment.Payment) error {
				assert.Equal(t, 855.0, p.TotalBill)
				return nil
			})

		// Gross amount 950 would cover the 900 bill, but the payment is
		// only worth its post-discount 855. No SetPaid expectation.
		deps.repo.EXPECT().SumByWork(ctx, workID.String()).Return(855.0, nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Add(ctx, payment.AddPaymentRequest{
			ClientID: clientID.String(),
			WorkID:   workID.String(),
			Amount:   950,
			Discount: 10,
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown work -> 404", func(t *testing.T) {
		deps := setupPaymentService(t)
		defer deps.db.Close()

		workID := uuid.New().String()
		deps.workRepo.EXPECT().
			FindByID(ctx, workID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Add(ctx, payment.AddPaymentRequest{
			ClientID: uuid.New().String(),
			WorkID:   workID,
			Amount:   100,
		})

		assert.ErrorIs(t, err, paymenterrors.ErrWorkNotFound)
	})
}

func TestPaymentService_GetByClient(t *testing.T) {
	ctx := context.Background()

	t.Run("history rows carry the work description", func(t *testing.T) {
		deps := setupPaymentService(t)
		defer deps.db.Close()

		clientID := uuid.New().String()
		deps.repo.EXPECT().
			FindByClientWithWork(ctx, clientID).
			Return([]payment.PaymentWithWork{{
				Payment: payment.Payment{
					ID:                 uuid.New(),
					Amount:             1000,
					DiscountPercentage: 10,
					TotalBill:          900,
					PaymentDate:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
				},
				WorkDescription: "GST registration",
			}}, nil)

		rows, err := deps.service.GetByClient(ctx, clientID)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "GST registration", rows[0].WorkDescription)
		assert.Equal(t, 900.0, rows[0].TotalBill)
	})

	t.Run("no payments -> 404", func(t *testing.T) {
		deps := setupPaymentService(t)
		defer deps.db.Close()

		clientID := uuid.New().String()
		deps.repo.EXPECT().
			FindByClientWithWork(ctx, clientID).
			Return([]payment.PaymentWithWork{}, nil)

		_, err := deps.service.GetByClient(ctx, clientID)

		assert.ErrorIs(t, err, paymenterrors.ErrNoPaymentsFound)
	})
}
