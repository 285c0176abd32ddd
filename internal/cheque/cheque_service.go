package cheque

import (
	"context"
	"errors"
	"strings"
	"time"

	chequeerrors "chequebook/internal/cheque/errors"
	"chequebook/internal/payee"
	"chequebook/internal/shared/identifier"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateChequeRequest) (ChequeResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]ChequeResponse, error)
	GetByID(ctx context.Context, id string) (ChequeResponse, error)
	Update(ctx context.Context, id string, req UpdateChequeRequest) (ChequeResponse, error)
	Delete(ctx context.Context, id string) error
	NextChequeNumber(ctx context.Context) (int, error)
}

type service struct {
	repo        Repository
	payeeRepo   payee.Repository
	numberFloor int
}

func NewService(repo Repository, payeeRepo payee.Repository, numberFloor int) Service {
	if numberFloor <= 0 {
		numberFloor = DefaultNumberFloor
	}
	return &service{repo: repo, payeeRepo: payeeRepo, numberFloor: numberFloor}
}

func validDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

func (s *service) Create(ctx context.Context, req CreateChequeRequest) (ChequeResponse, error) {
	if !validDate(req.DueDate) {
		return ChequeResponse{}, chequeerrors.ErrInvalidDate
	}

	p, err := s.payeeRepo.FindByID(ctx, req.PayeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChequeResponse{}, chequeerrors.ErrPayeeRequired
		}
		return ChequeResponse{}, err
	}

	var chequeNo int
	if req.ChequeNo != nil {
		chequeNo = NormalizeExplicitNumber(*req.ChequeNo)
	} else {
		chequeNo, err = s.NextChequeNumber(ctx)
		if err != nil {
			return ChequeResponse{}, err
		}
	}

	c := &Cheque{
		ID:          identifier.New(),
		Payer:       p.CompanyName,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      StatusPending,
		Notes:       req.Notes,
		CompanyName: p.CompanyName,
		Agent:       p.AgentName,
		Mobile:      p.Mobile,
		ChequeNo:    chequeNo,
		PayeeID:     p.ID,
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return ChequeResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]ChequeResponse, error) {
	if filter.From != "" && !validDate(filter.From) {
		return nil, chequeerrors.ErrInvalidDate
	}
	if filter.To != "" && !validDate(filter.To) {
		return nil, chequeerrors.ErrInvalidDate
	}

	cheques, err := s.repo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		filtered := make([]Cheque, 0, len(cheques))
		for _, c := range cheques {
			if strings.Contains(strings.ToLower(c.Payer), q) ||
				strings.Contains(strings.ToLower(c.Notes), q) {
				filtered = append(filtered, c)
			}
		}
		cheques = filtered
	}

	return mapToListResponse(cheques), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ChequeResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ChequeResponse{}, err
	}
	return mapToResponse(*c), nil
}

// Update patches only status and due date, the two fields the edit flow
// touches. Any status can move to any other status.
func (s *service) Update(ctx context.Context, id string, req UpdateChequeRequest) (ChequeResponse, error) {
	if !validDate(req.DueDate) {
		return ChequeResponse{}, chequeerrors.ErrInvalidDate
	}

	if err := s.repo.Patch(ctx, id, map[string]any{
		"status":   req.Status,
		"due_date": req.DueDate,
	}); err != nil {
		return ChequeResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) NextChequeNumber(ctx context.Context) (int, error) {
	cheques, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return NextNumber(cheques, s.numberFloor), nil
}
