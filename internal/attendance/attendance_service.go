package attendance

import (
	"context"
	"errors"
	"sort"
	"time"

	attendanceerrors "chequebook/internal/attendance/errors"
	"chequebook/internal/employee"
	"chequebook/internal/shared/identifier"

	"gorm.io/gorm"
)

type Service interface {
	SetMultiplier(ctx context.Context, req SetMultiplierRequest) (AttendanceResponse, error)
	WeekGrid(ctx context.Context, weekEnding string) (WeekGridResponse, error)
	ForPeriod(ctx context.Context, employeeID, from, to string) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
}

func NewService(repo Repository, employeeRepo employee.Repository) Service {
	return &service{repo: repo, employeeRepo: employeeRepo}
}

func validDate(v string) bool {
	_, err := time.Parse(dateLayout, v)
	return err == nil
}

// SetMultiplier updates the existing row for (employeeId, date) when there is
// one, otherwise inserts with a fresh id and the employee's name snapshot.
// The lookup-before-insert is the only thing keeping the pair unique.
func (s *service) SetMultiplier(ctx context.Context, req SetMultiplierRequest) (AttendanceResponse, error) {
	if !validDate(req.Date) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	existing, err := s.repo.FindByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err == nil {
		if err := s.repo.Patch(ctx, existing.ID, map[string]any{
			"multiplier": req.Multiplier,
		}); err != nil {
			return AttendanceResponse{}, err
		}
		existing.Multiplier = req.Multiplier
		return mapToResponse(*existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	a := &Attendance{
		ID:           identifier.New(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.Name,
		Date:         req.Date,
		Multiplier:   req.Multiplier,
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*a), nil
}

// WeekGrid builds the attendance tab for one week: every active employee
// sorted by name, every day of the week, 0 where no record exists.
func (s *service) WeekGrid(ctx context.Context, weekEnding string) (WeekGridResponse, error) {
	dates, err := WeekDates(weekEnding)
	if err != nil {
		return WeekGridResponse{}, attendanceerrors.ErrInvalidDate
	}

	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return WeekGridResponse{}, err
	}

	records, err := s.repo.FindByDates(ctx, dates)
	if err != nil {
		return WeekGridResponse{}, err
	}

	type cellKey struct{ employeeID, date string }
	multipliers := make(map[cellKey]float64, len(records))
	for _, a := range records {
		multipliers[cellKey{a.EmployeeID, a.Date}] = a.Multiplier
	}

	active := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })

	rows := make([]EmployeeWeekRow, len(active))
	for i, e := range active {
		days := make([]DayCell, len(dates))
		for j, date := range dates {
			days[j] = DayCell{Date: date, Multiplier: multipliers[cellKey{e.ID, date}]}
		}
		rows[i] = EmployeeWeekRow{EmployeeID: e.ID, EmployeeName: e.Name, Days: days}
	}

	return WeekGridResponse{WeekEnding: weekEnding, Dates: dates, Rows: rows}, nil
}

func (s *service) ForPeriod(ctx context.Context, employeeID, from, to string) ([]AttendanceResponse, error) {
	if !validDate(from) || !validDate(to) {
		return nil, attendanceerrors.ErrInvalidDate
	}

	items, err := s.repo.FindForPeriod(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
