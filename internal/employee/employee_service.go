package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/employee/errors"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/contextutil"
	"github.com/AnnapurnaNeerukonda/work-tracker-backend/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
	)

	if req.EmployeeCode != "" {
		// Reject the duplicate before anything is written. The unique
		// index is still there as the backstop for racing requests.
		if _, err := s.repo.FindByCode(ctx, req.EmployeeCode); err == nil {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeCodeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, err
		}
	} else {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
		if err != nil {
			s.logger.Error("generate employee code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeCode = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:            uuid.New(),
		Name:          req.Name,
		EmployeeCode:  req.EmployeeCode,
		Designation:   req.Designation,
		BankName:      req.BankName,
		IFSCCode:      req.IFSCCode,
		AccountNumber: req.AccountNumber,
		Photo:         req.Photo,
		PhoneNumber:   req.PhoneNumber,
		Email:         req.Email,
		Address:       req.Address,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		_ = s.rdb.Del(ctx, EmployeeOptionsKey).Err()
	}

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		resp[i] = mapToResponse(e)
	}

	return resp, nil
}

// GetOptions serves the dropdown shape from redis; a cache miss is
// populated once per key through singleflight so a stampede of requests
// results in a single database read.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var options []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (any, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			options[i] = EmployeeOption{
				ID:           e.ID.String(),
				Name:         e.Name,
				EmployeeCode: e.EmployeeCode,
			}
		}

		if s.rdb != nil {
			if payload, marshalErr := json.Marshal(options); marshalErr == nil {
				_ = s.rdb.Set(ctx, EmployeeOptionsKey, payload, 10*time.Minute).Err()
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		EmployeeCode:  e.EmployeeCode,
		Designation:   e.Designation,
		BankName:      e.BankName,
		IFSCCode:      e.IFSCCode,
		AccountNumber: e.AccountNumber,
		Photo:         e.Photo,
		PhoneNumber:   e.PhoneNumber,
		Email:         e.Email,
		Address:       e.Address,
	}
}
