package store

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"chequebook/internal/shared/apperror"
	"chequebook/internal/shared/identifier"
)

var errStoreNameRequired = apperror.New(
	apperror.CodeInvalidInput,
	"Store name is required",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	GetAll(ctx context.Context) ([]StoreResponse, error)
	GetByID(ctx context.Context, id string) (StoreResponse, error)
	Update(ctx context.Context, id string, req UpdateStoreRequest) (StoreResponse, error)
	ReplaceAll(ctx context.Context, req ReplaceAllRequest) ([]StoreResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error) {
	name := strings.TrimSpace(req.StoreName)
	if name == "" {
		return StoreResponse{}, errStoreNameRequired
	}

	st := &Store{
		ID:        identifier.New(),
		StoreName: name,
		Address:   strings.TrimSpace(req.Address),
		Landline:  strings.TrimSpace(req.Landline),
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return StoreResponse{}, err
	}
	return mapToResponse(*st), nil
}

func (s *service) GetAll(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(stores, func(i, j int) bool {
		return strings.ToLower(stores[i].StoreName) < strings.ToLower(stores[j].StoreName)
	})
	return mapToListResponse(stores), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StoreResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StoreResponse{}, err
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStoreRequest) (StoreResponse, error) {
	name := strings.TrimSpace(req.StoreName)
	if name == "" {
		return StoreResponse{}, errStoreNameRequired
	}

	if err := s.repo.Patch(ctx, id, map[string]any{
		"store_name": name,
		"address":    strings.TrimSpace(req.Address),
		"landline":   strings.TrimSpace(req.Landline),
	}); err != nil {
		return StoreResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// ReplaceAll swaps the whole store list for the given set, the management
// screen's bulk-edit flow. Rows without an id are new and get one.
func (s *service) ReplaceAll(ctx context.Context, req ReplaceAllRequest) ([]StoreResponse, error) {
	stores := make([]Store, 0, len(req.Stores))
	for _, rec := range req.Stores {
		name := strings.TrimSpace(rec.StoreName)
		if name == "" {
			return nil, errStoreNameRequired
		}
		id := rec.ID
		if id == "" {
			id = identifier.New()
		}
		stores = append(stores, Store{
			ID:        id,
			StoreName: name,
			Address:   strings.TrimSpace(rec.Address),
			Landline:  strings.TrimSpace(rec.Landline),
		})
	}
	if err := s.repo.ReplaceAll(ctx, stores); err != nil {
		return nil, err
	}
	return mapToListResponse(stores), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
