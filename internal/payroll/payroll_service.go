package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"chequebook/internal/attendance"
	"chequebook/internal/debt"
	"chequebook/internal/employee"
	payrollerrors "chequebook/internal/payroll/errors"
	"chequebook/internal/shared/contextutil"
	"chequebook/internal/shared/identifier"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	History(ctx context.Context, employeeID string) (HistoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	debtRepo       debt.Repository
	logger         *zap.Logger
	now            func() time.Time
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	debtRepo debt.Repository,
) Service {
	return &service{
		repo:           repo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		debtRepo:       debtRepo,
		logger:         zap.L().Named("payroll.service"),
		now:            time.Now,
	}
}

// Generate writes one payroll per active employee for the week, skipping any
// employee that already has a record for that weekEnding. Regeneration never
// overwrites.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	weekDates, err := attendance.WeekDates(req.WeekEnding)
	if err != nil {
		return GenerateResult{}, payrollerrors.ErrInvalidWeekEnding
	}
	monday, sunday := weekDates[0], weekDates[6]

	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return GenerateResult{}, err
	}

	var result GenerateResult
	for _, emp := range employees {
		if !emp.IsActive() {
			continue
		}

		_, err := s.repo.FindByEmployeeAndWeek(ctx, emp.ID, sunday)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, err
		}

		days, err := s.weekAttendance(ctx, emp.ID, monday, sunday, weekDates)
		if err != nil {
			return result, err
		}

		var grossPay float64
		for _, d := range days {
			grossPay += emp.Rate * d.Multiplier
		}

		deduction, err := s.clampDeduction(ctx, emp.ID, req.Deductions[emp.ID], grossPay)
		if err != nil {
			return result, err
		}

		p := &Payroll{
			ID:             identifier.New(),
			EmployeeID:     emp.ID,
			EmployeeName:   emp.Name,
			WeekEnding:     sunday,
			MondayToSunday: weekDates,
			Attendance:     days,
			Rate:           emp.Rate,
			GrossPay:       grossPay,
			Deductions:     deduction,
			NetPay:         grossPay - deduction,
			Status:         StatusPending,
		}
		if err := s.repo.Save(ctx, p); err != nil {
			return result, err
		}
		result.Generated++
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll generated",
		zap.String("weekEnding", sunday),
		zap.Int("generated", result.Generated),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// weekAttendance returns the full 7-day list for the week, gap-filling days
// with no record as multiplier 0, sorted ascending by date.
func (s *service) weekAttendance(ctx context.Context, employeeID, monday, sunday string, weekDates []string) ([]DayAttendance, error) {
	records, err := s.attendanceRepo.FindForPeriod(ctx, employeeID, monday, sunday)
	if err != nil {
		return nil, err
	}

	days := make([]DayAttendance, 0, len(weekDates))
	seen := make(map[string]bool, len(weekDates))
	for _, a := range records {
		days = append(days, DayAttendance{Date: a.Date, Multiplier: a.Multiplier})
		seen[a.Date] = true
	}
	for _, date := range weekDates {
		if !seen[date] {
			days = append(days, DayAttendance{Date: date})
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// clampDeduction keeps a payroll from deducting more than the employee owes
// or more than the week earned.
func (s *service) clampDeduction(ctx context.Context, employeeID string, requested, grossPay float64) (float64, error) {
	entries, err := s.debtRepo.FindByEntity(ctx, debt.EntityTypeEmployee, employeeID)
	if err != nil {
		return 0, err
	}

	currentDebt := debt.TotalOf(entries)
	if currentDebt < 0 {
		currentDebt = 0
	}
	if requested < 0 {
		requested = 0
	}

	deduction := requested
	if currentDebt < deduction {
		deduction = currentDebt
	}
	if grossPay < deduction {
		deduction = grossPay
	}
	return deduction, nil
}

// MarkPaid moves a pending payroll to paid. When the payroll carries a
// deduction, the matching debt payment entry is written in the same
// transaction, before the status flip.
func (s *service) MarkPaid(ctx context.Context, id string) (PayrollResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusPending {
		return PayrollResponse{}, payrollerrors.ErrNotPending
	}

	paidDate := s.now().Format("2006-01-02")

	var deduction *debt.Entry
	if p.Deductions > 0 {
		deduction = &debt.Entry{
			ID:          identifier.New(),
			EntityType:  debt.EntityTypeEmployee,
			EntityID:    p.EmployeeID,
			EntityName:  p.EmployeeName,
			Type:        debt.TypePayment,
			Amount:      p.Deductions,
			Date:        paidDate,
			Description: fmt.Sprintf("Payroll deduction for week ending %s", p.WeekEnding),
		}
	}

	if err := s.repo.MarkPaid(ctx, id, paidDate, deduction); err != nil {
		return PayrollResponse{}, err
	}

	p.Status = StatusPaid
	p.PaidDate = paidDate
	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) History(ctx context.Context, employeeID string) (HistoryResponse, error) {
	var payrolls []Payroll
	var err error
	if employeeID != "" {
		payrolls, err = s.repo.FindByEmployee(ctx, employeeID)
	} else {
		payrolls, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return HistoryResponse{}, err
	}

	resp := HistoryResponse{Payrolls: make([]PayrollResponse, len(payrolls))}
	for i, p := range payrolls {
		resp.Payrolls[i] = mapToResponse(p)
		resp.Totals.GrossPay += p.GrossPay
		resp.Totals.Deductions += p.Deductions
		resp.Totals.NetPay += p.NetPay
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
