package work

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// WorkWithEmployee is a work row joined with its assigned employee.
type WorkWithEmployee struct {
	Work         `gorm:"embedded"`
	EmployeeName string `gorm:"column:employee_name"`
	EmployeeCode string `gorm:"column:employee_code"`
}

// WorkWithClient is a work row joined with its owning client.
type WorkWithClient struct {
	Work       `gorm:"embedded"`
	ClientName string `gorm:"column:client_name"`
}

// ReportRecord is the flattened row behind GET /reports.
type ReportRecord struct {
	ClientName       string    `gorm:"column:client_name"`
	EmployeeName     string    `gorm:"column:employee_name"`
	WorkAssignedDate time.Time `gorm:"column:work_assigned_date"`
	Status           string    `gorm:"column:status"`
	WorkDescription  string    `gorm:"column:work_description"`
}

//go:generate mockgen -source=work_repo.go -destination=mock/work_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *Work) error
	BulkCreate(ctx context.Context, works []Work) error
	FindByID(ctx context.Context, id string) (*Work, error)
	Save(ctx context.Context, w *Work) error
	UpdateBilling(ctx context.Context, id string, amount, discount, totalBill float64) (int64, error)
	SetPaid(ctx context.Context, id string, isPaid bool) (int64, error)
	FindByClient(ctx context.Context, clientID string) ([]WorkWithEmployee, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]WorkWithClient, error)
	FindUnpaidByClient(ctx context.Context, clientID string) ([]Work, error)
	Report(ctx context.Context, from, to *time.Time, status string) ([]ReportRecord, error)
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

const insertWorkSQL = `
        INSERT INTO works (
            id, work_description, work_assigned_date, pending_documents, status,
            employee_id, client_id, work_completed_date, due_date, fee_estimation,
            amount, discount, total_bill, is_paid, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
    `

// Create inserts through the attached transaction when one is present so a
// work row and its outbox event commit atomically.
func (r *repository) Create(ctx context.Context, w *Work) error {
	_, err := r.execer().ExecContext(
		ctx, insertWorkSQL,
		w.ID, w.WorkDescription, w.WorkAssignedDate, w.PendingDocuments, w.Status,
		w.EmployeeID, w.ClientID, w.WorkCompletedDate, w.DueDate, w.FeeEstimation,
		w.Amount, w.Discount, w.TotalBill, w.IsPaid,
	)
	return err
}

func (r *repository) BulkCreate(ctx context.Context, works []Work) error {
	for i := range works {
		if err := r.Create(ctx, &works[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Work, error) {
	var w Work
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) Save(ctx context.Context, w *Work) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *repository) UpdateBilling(ctx context.Context, id string, amount, discount, totalBill float64) (int64, error) {
	res, err := r.execer().ExecContext(ctx, `
UPDATE works
SET amount = $2, discount = $3, total_bill = $4, is_paid = TRUE, updated_at = NOW()
WHERE id = $1
`, id, amount, discount, totalBill)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) SetPaid(ctx context.Context, id string, isPaid bool) (int64, error) {
	res, err := r.execer().ExecContext(ctx, `
UPDATE works
SET is_paid = $2, updated_at = NOW()
WHERE id = $1
`, id, isPaid)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) FindByClient(ctx context.Context, clientID string) ([]WorkWithEmployee, error) {
	var rows []WorkWithEmployee
	err := r.db.WithContext(ctx).
		Table("works").
		Select("works.*, employees.name AS employee_name, employees.employee_code AS employee_code").
		Joins("JOIN employees ON employees.id = works.employee_id").
		Where("works.client_id = ?", clientID).
		Order("works.work_assigned_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]WorkWithClient, error) {
	var rows []WorkWithClient
	err := r.db.WithContext(ctx).
		Table("works").
		Select("works.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = works.client_id").
		Where("works.employee_id = ?", employeeID).
		Order("works.work_assigned_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindUnpaidByClient(ctx context.Context, clientID string) ([]Work, error) {
	var works []Work
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND is_paid = ?", clientID, false).
		Order("work_assigned_date ASC").
		Find(&works).Error
	return works, err
}

func (r *repository) Report(ctx context.Context, from, to *time.Time, status string) ([]ReportRecord, error) {
	q := r.db.WithContext(ctx).
		Table("works").
		Select(`clients.name AS client_name,
			employees.name AS employee_name,
			works.work_assigned_date,
			works.status,
			works.work_description`).
		Joins("JOIN clients ON clients.id = works.client_id").
		Joins("JOIN employees ON employees.id = works.employee_id")

	if from != nil {
		q = q.Where("works.work_assigned_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("works.work_assigned_date <= ?", *to)
	}
	if status != "" {
		q = q.Where("works.status = ?", status)
	}

	var rows []ReportRecord
	err := q.Order("works.work_assigned_date ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
