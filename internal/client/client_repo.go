package client

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cl *Client) error
	FindAll(ctx context.Context) ([]Client, error)
	FindByID(ctx context.Context, id string) (*Client, error)
	Exists(ctx context.Context, id string) (bool, error)
	SearchByName(ctx context.Context, term string) ([]Client, error)
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
// client and its initial works commit or roll back together.
func (r *repository) Create(ctx context.Context, cl *Client) error {
	_, err := r.execer().ExecContext(ctx, `
        INSERT INTO clients (
            id, name, business_name, pan_number, gstin_no, address, phone_number,
            reference_name, email_id, aadhar_number, client_pic, employee_id,
            employee_name, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
    `,
		cl.ID, cl.Name, cl.BusinessName, cl.PANNumber, cl.GSTINNo, cl.Address,
		cl.PhoneNumber, cl.ReferenceName, cl.EmailID, cl.AadharNumber,
		cl.ClientPic, cl.EmployeeID, cl.EmployeeName,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&clients).Error
	return clients, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// SearchByName is a case-insensitive substring match, preserving stored
// order.
func (r *repository) SearchByName(ctx context.Context, term string) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("created_at ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
