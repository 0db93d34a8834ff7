package payment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// PaymentWithWork is a payment row joined with its work's description.
type PaymentWithWork struct {
	Payment         `gorm:"embedded"`
	WorkDescription string `gorm:"column:work_description"`
}

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payment) error
	FindByClientWithWork(ctx context.Context, clientID string) ([]PaymentWithWork, error)
	SumByWork(ctx context.Context, workID string) (float64, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	sqlDB, _ := db.DB()
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

// Create inserts through the attached transaction when present so the
// payment row and the derived paid flag on its work commit together.
func (r *repository) Create(ctx context.Context, p *Payment) error {
	_, err := r.execer().ExecContext(ctx, `
        INSERT INTO payments (
            id, client_id, work_id, amount, discount_percentage,
            total_bill, payment_date, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    `,
		p.ID, p.ClientID, p.WorkID, p.Amount, p.DiscountPercentage,
		p.TotalBill, p.PaymentDate,
	)
	return err
}

func (r *repository) FindByClientWithWork(ctx context.Context, clientID string) ([]PaymentWithWork, error) {
	var rows []PaymentWithWork
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.*, works.work_description AS work_description").
		Joins("JOIN works ON works.id = payments.work_id").
		Where("payments.client_id = ?", clientID).
		Order("payments.payment_date ASC").
		Scan(&rows).Error
	return rows, err
}

// SumByWork totals what has been received against a work. Each payment
// counts at its post-discount total_bill, the same figure the work's own
// total_bill carries, so the paid comparison never mixes gross and net.
// Reads through the attached transaction when present so the derived paid
// flag sees the row inserted in the same transaction.
func (r *repository) SumByWork(ctx context.Context, workID string) (float64, error) {
	const query = `SELECT COALESCE(SUM(total_bill), 0) FROM payments WHERE work_id = $1`

	var total float64
	if r.tx != nil {
		err := r.tx.QueryRowContext(ctx, query, workID).Scan(&total)
		return total, err
	}

	err := r.db.WithContext(ctx).Raw(query, workID).Scan(&total).Error
	return total, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
