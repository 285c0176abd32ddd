package customer

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"chequebook/internal/shared/apperror"
	"chequebook/internal/shared/identifier"
)

var errNameRequired = apperror.New(
	apperror.CodeInvalidInput,
	"Customer name is required",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetAll(ctx context.Context) ([]CustomerResponse, error)
	GetByID(ctx context.Context, id string) (CustomerResponse, error)
	Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CustomerResponse{}, errNameRequired
	}

	c := &Customer{
		ID:      identifier.New(),
		Name:    name,
		Mobile:  strings.TrimSpace(req.Mobile),
		Address: strings.TrimSpace(req.Address),
		Email:   strings.TrimSpace(req.Email),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return CustomerResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(customers, func(i, j int) bool {
		return strings.ToLower(customers[i].Name) < strings.ToLower(customers[j].Name)
	})
	return mapToListResponse(customers), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CustomerResponse{}, errNameRequired
	}

	if err := s.repo.Patch(ctx, id, map[string]any{
		"name":    name,
		"mobile":  strings.TrimSpace(req.Mobile),
		"address": strings.TrimSpace(req.Address),
		"email":   strings.TrimSpace(req.Email),
	}); err != nil {
		return CustomerResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
