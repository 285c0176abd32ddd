package storesale

import (
	"context"
	"errors"
	"net/http"
	"time"

	"chequebook/internal/employee"
	"chequebook/internal/shared/apperror"
	"chequebook/internal/shared/identifier"
	"chequebook/internal/store"

	"gorm.io/gorm"
)

var errBadDate = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid date format, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreateStoreSaleRequest) (StoreSaleResponse, error)
	GetAll(ctx context.Context, storeID, from, to string) ([]StoreSaleResponse, error)
	GetByID(ctx context.Context, id string) (StoreSaleResponse, error)
	Update(ctx context.Context, id string, req UpdateStoreSaleRequest) (StoreSaleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	storeRepo    store.Repository
	employeeRepo employee.Repository
}

func NewService(repo Repository, storeRepo store.Repository, employeeRepo employee.Repository) Service {
	return &service{repo: repo, storeRepo: storeRepo, employeeRepo: employeeRepo}
}

func validDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

func (s *service) Create(ctx context.Context, req CreateStoreSaleRequest) (StoreSaleResponse, error) {
	if !validDate(req.Date) {
		return StoreSaleResponse{}, errBadDate
	}

	// Name snapshots are copied here once. Dangling references are not an
	// error; the row just carries the N/A placeholder.
	storeName := "N/A"
	if st, err := s.storeRepo.FindByID(ctx, req.StoreID); err == nil {
		storeName = st.StoreName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return StoreSaleResponse{}, err
	}

	cashierName := "N/A"
	if emp, err := s.employeeRepo.FindByID(ctx, req.CashierID); err == nil {
		cashierName = emp.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return StoreSaleResponse{}, err
	}

	sale := &StoreSale{
		ID:          identifier.New(),
		StoreID:     req.StoreID,
		StoreName:   storeName,
		CashierID:   req.CashierID,
		CashierName: cashierName,
		Sales:       req.Sales,
		Remit:       req.Remit,
		Date:        req.Date,
	}
	if err := s.repo.Save(ctx, sale); err != nil {
		return StoreSaleResponse{}, err
	}
	return mapToResponse(*sale), nil
}

func (s *service) GetAll(ctx context.Context, storeID, from, to string) ([]StoreSaleResponse, error) {
	if from != "" && !validDate(from) {
		return nil, errBadDate
	}
	if to != "" && !validDate(to) {
		return nil, errBadDate
	}
	sales, err := s.repo.FindFiltered(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(sales), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StoreSaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StoreSaleResponse{}, err
	}
	return mapToResponse(*sale), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStoreSaleRequest) (StoreSaleResponse, error) {
	if !validDate(req.Date) {
		return StoreSaleResponse{}, errBadDate
	}

	// Snapshots stay as created; only the figures and date move.
	if err := s.repo.Patch(ctx, id, map[string]any{
		"sales": req.Sales,
		"remit": req.Remit,
		"date":  req.Date,
	}); err != nil {
		return StoreSaleResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
