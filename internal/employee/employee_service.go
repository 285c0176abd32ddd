package employee

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
	"Employee name is required",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetActiveOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	ToggleActive(ctx context.Context, id string) (EmployeeResponse, error)
	ReplaceAll(ctx context.Context, req ReplaceAllRequest) ([]EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return EmployeeResponse{}, errNameRequired
	}

	active := true
	e := &Employee{
		ID:           identifier.New(),
		Name:         name,
		Position:     strings.TrimSpace(req.Position),
		Rate:         req.Rate,
		StoreID:      req.StoreID,
		Active:       &active,
		SssNo:        strings.TrimSpace(req.SssNo),
		PhilhealthNo: strings.TrimSpace(req.PhilNo),
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(employees, func(i, j int) bool {
		return strings.ToLower(employees[i].Name) < strings.ToLower(employees[j].Name)
	})
	return mapToListResponse(employees), nil
}

// GetActiveOptions lists active employees A-Z for pickers and the payroll
// grid. Records predating the active flag count as active.
func (s *service) GetActiveOptions(ctx context.Context) ([]EmployeeOption, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]EmployeeOption, 0, len(employees))
	for _, e := range employees {
		if !e.IsActive() {
			continue
		}
		options = append(options, EmployeeOption{ID: e.ID, Name: e.Name, Rate: e.Rate})
	}
	sort.Slice(options, func(i, j int) bool {
		return strings.ToLower(options[i].Name) < strings.ToLower(options[j].Name)
	})
	return options, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return EmployeeResponse{}, errNameRequired
	}

	// Renames do not rewrite the name snapshots already copied onto
	// attendance, payroll, sales or debt rows.
	if err := s.repo.Patch(ctx, id, map[string]any{
		"name":          name,
		"position":      strings.TrimSpace(req.Position),
		"rate":          req.Rate,
		"store_id":      req.StoreID,
		"sss_no":        strings.TrimSpace(req.SssNo),
		"philhealth_no": strings.TrimSpace(req.PhilNo),
	}); err != nil {
		return EmployeeResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *service) ToggleActive(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	next := !e.IsActive()
	if err := s.repo.Patch(ctx, id, map[string]any{"active": next}); err != nil {
		return EmployeeResponse{}, err
	}
	e.Active = &next
	return mapToResponse(*e), nil
}

// ReplaceAll swaps the whole roster for the given set, the management
// screen's bulk-edit flow. Rows without an id are new and get one.
func (s *service) ReplaceAll(ctx context.Context, req ReplaceAllRequest) ([]EmployeeResponse, error) {
	employees := make([]Employee, 0, len(req.Employees))
	for _, rec := range req.Employees {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, errNameRequired
		}
		id := rec.ID
		if id == "" {
			id = identifier.New()
		}
		employees = append(employees, Employee{
			ID:           id,
			Name:         name,
			Position:     strings.TrimSpace(rec.Position),
			Rate:         rec.Rate,
			StoreID:      rec.StoreID,
			Active:       rec.Active,
			SssNo:        strings.TrimSpace(rec.SssNo),
			PhilhealthNo: strings.TrimSpace(rec.PhilhealthNo),
		})
	}
	if err := s.repo.ReplaceAll(ctx, employees); err != nil {
		return nil, err
	}
	return mapToListResponse(employees), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
