package debt

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"chequebook/internal/customer"
	debterrors "chequebook/internal/debt/errors"
	"chequebook/internal/employee"
	"chequebook/internal/shared/identifier"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	Update(ctx context.Context, id string, req UpdateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, entityType, entityID string) ([]LedgerLine, error)
	TotalBalance(ctx context.Context, entityType, entityID string) (float64, error)
	Balances(ctx context.Context, entityType string) (BalancesResponse, error)
}

type service struct {
	repo         Repository
	customerRepo customer.Repository
	employeeRepo employee.Repository
}

func NewService(repo Repository, customerRepo customer.Repository, employeeRepo employee.Repository) Service {
	return &service{repo: repo, customerRepo: customerRepo, employeeRepo: employeeRepo}
}

func validDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

// resolveEntityName snapshots the current display name of the debtor.
func (s *service) resolveEntityName(ctx context.Context, entityType, entityID string) (string, error) {
	switch entityType {
	case EntityTypeCustomer:
		c, err := s.customerRepo.FindByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", debterrors.ErrEntityNotFound
			}
			return "", err
		}
		return c.Name, nil
	case EntityTypeEmployee:
		e, err := s.employeeRepo.FindByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", debterrors.ErrEntityNotFound
			}
			return "", err
		}
		return e.Name, nil
	default:
		return "", debterrors.ErrInvalidEntityType
	}
}

func (s *service) Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error) {
	if !validDate(req.Date) {
		return EntryResponse{}, debterrors.ErrInvalidDate
	}

	name, err := s.resolveEntityName(ctx, req.EntityType, req.EntityID)
	if err != nil {
		return EntryResponse{}, err
	}

	e := &Entry{
		ID:          identifier.New(),
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
		EntityName:  name,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Save(ctx, e); err != nil {
		return EntryResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEntryRequest) (EntryResponse, error) {
	if !validDate(req.Date) {
		return EntryResponse{}, debterrors.ErrInvalidDate
	}

	if err := s.repo.Patch(ctx, id, map[string]any{
		"type":        req.Type,
		"amount":      req.Amount,
		"date":        req.Date,
		"description": strings.TrimSpace(req.Description),
	}); err != nil {
		return EntryResponse{}, err
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EntryResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) History(ctx context.Context, entityType, entityID string) ([]LedgerLine, error) {
	entries, err := s.repo.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	return RunningHistory(entries), nil
}

func (s *service) TotalBalance(ctx context.Context, entityType, entityID string) (float64, error) {
	entries, err := s.repo.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return 0, err
	}
	return TotalOf(entries), nil
}

// Balances groups ledger entries under the live entity list, so entries whose
// entity was deleted disappear from the report, and splits the result into
// still-owing and settled buckets.
func (s *service) Balances(ctx context.Context, entityType string) (BalancesResponse, error) {
	names, err := s.liveEntityNames(ctx, entityType)
	if err != nil {
		return BalancesResponse{}, err
	}

	entries, err := s.repo.FindByEntityType(ctx, entityType)
	if err != nil {
		return BalancesResponse{}, err
	}

	byEntity := make(map[string][]Entry)
	var summary LedgerSummary
	for _, e := range entries {
		if _, known := names[e.EntityID]; !known {
			continue
		}
		byEntity[e.EntityID] = append(byEntity[e.EntityID], e)
		if e.Type == TypeCharge {
			summary.TotalCharges += e.Amount
		} else {
			summary.TotalPayments += e.Amount
		}
	}
	summary.NetBalance = summary.TotalCharges - summary.TotalPayments

	resp := BalancesResponse{
		Active:  []EntityBalance{},
		Cleared: []EntityBalance{},
		Summary: summary,
	}
	for entityID, list := range byEntity {
		group := EntityBalance{
			EntityID:   entityID,
			EntityName: names[entityID],
			Balance:    TotalOf(list),
			Lines:      RunningHistory(list),
		}
		if group.Balance != 0 {
			resp.Active = append(resp.Active, group)
		} else {
			resp.Cleared = append(resp.Cleared, group)
		}
	}

	byName := func(groups []EntityBalance) func(i, j int) bool {
		return func(i, j int) bool { return groups[i].EntityName < groups[j].EntityName }
	}
	sort.Slice(resp.Active, byName(resp.Active))
	sort.Slice(resp.Cleared, byName(resp.Cleared))
	return resp, nil
}

func (s *service) liveEntityNames(ctx context.Context, entityType string) (map[string]string, error) {
	names := make(map[string]string)
	switch entityType {
	case EntityTypeCustomer:
		customers, err := s.customerRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			names[c.ID] = c.Name
		}
	case EntityTypeEmployee:
		employees, err := s.employeeRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			names[e.ID] = e.Name
		}
	default:
		return nil, debterrors.ErrInvalidEntityType
	}
	return names, nil
}
