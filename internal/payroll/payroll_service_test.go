package payroll

import (
	"context"
	"testing"

	"chequebook/internal/attendance"
	"chequebook/internal/debt"
	"chequebook/internal/employee"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	rows []Payroll
	// ops records persistence calls so tests can assert write ordering.
	ops []string
}

func (f *fakeRepo) Save(ctx context.Context, p *Payroll) error {
	f.rows = append(f.rows, *p)
	f.ops = append(f.ops, "save")
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Payroll, error) {
	return append([]Payroll(nil), f.rows...), nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	for _, p := range f.rows {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmployeeAndWeek(ctx context.Context, employeeID, weekEnding string) (*Payroll, error) {
	for _, p := range f.rows {
		if p.EmployeeID == employeeID && p.WeekEnding == weekEnding {
			cp := p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var out []Payroll
	for _, p := range f.rows {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkPaid(ctx context.Context, id, paidDate string, deduction *debt.Entry) error {
	if deduction != nil {
		f.ops = append(f.ops, "debt-entry")
	}
	f.ops = append(f.ops, "status-flip")
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = StatusPaid
			f.rows[i].PaidDate = paidDate
		}
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Save(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeEmployeeRepo) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	return nil
}

type fakeAttendanceRepo struct {
	rows []attendance.Attendance
}

func (f *fakeAttendanceRepo) Save(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.rows, nil
}
func (f *fakeAttendanceRepo) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepo) FindForPeriod(ctx context.Context, employeeID, from, to string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) FindByDates(ctx context.Context, dates []string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeDebtRepo struct {
	rows []debt.Entry
}

func (f *fakeDebtRepo) Save(ctx context.Context, e *debt.Entry) error {
	f.rows = append(f.rows, *e)
	return nil
}
func (f *fakeDebtRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (f *fakeDebtRepo) FindAll(ctx context.Context) ([]debt.Entry, error) { return f.rows, nil }
func (f *fakeDebtRepo) FindByID(ctx context.Context, id string) (*debt.Entry, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDebtRepo) FindByEntity(ctx context.Context, entityType, entityID string) ([]debt.Entry, error) {
	var out []debt.Entry
	for _, e := range f.rows {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeDebtRepo) FindByEntityType(ctx context.Context, entityType string) ([]debt.Entry, error) {
	return f.rows, nil
}
func (f *fakeDebtRepo) Delete(ctx context.Context, id string) error { return nil }

func boolPtr(v bool) *bool { return &v }

const weekEnding = "2025-04-06" // a Sunday; week starts 2025-03-31

func fullWeek(employeeID string, multiplier float64) []attendance.Attendance {
	dates, _ := attendance.WeekDates(weekEnding)
	rows := make([]attendance.Attendance, len(dates))
	for i, d := range dates {
		rows[i] = attendance.Attendance{
			ID: d + "-" + employeeID, EmployeeID: employeeID, Date: d, Multiplier: multiplier,
		}
	}
	return rows
}

func TestGenerate_OncePerEmployeeWeek(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo,
		&fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp1", Name: "Pedro", Rate: 500},
			{ID: "emp2", Name: "Ana", Rate: 600},
			{ID: "emp3", Name: "Idle", Rate: 400, Active: boolPtr(false)},
		}},
		&fakeAttendanceRepo{rows: fullWeek("emp1", 1)},
		&fakeDebtRepo{},
	)

	first, err := svc.Generate(context.Background(), GenerateRequest{WeekEnding: weekEnding})
	assert.NoError(t, err)
	assert.Equal(t, 2, first.Generated)
	assert.Equal(t, 0, first.Skipped)
	assert.Len(t, repo.rows, 2)

	// Same week again: nothing regenerated, nothing overwritten.
	second, err := svc.Generate(context.Background(), GenerateRequest{WeekEnding: weekEnding})
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Generated)
	assert.Equal(t, 2, second.Skipped)
	assert.Len(t, repo.rows, 2)
}

func TestGenerate_GapFillsAndComputesGross(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo,
		&fakeEmployeeRepo{employees: []employee.Employee{{ID: "emp1", Name: "Pedro", Rate: 500}}},
		&fakeAttendanceRepo{rows: []attendance.Attendance{
			{ID: "a1", EmployeeID: "emp1", Date: "2025-04-02", Multiplier: 1},
			{ID: "a2", EmployeeID: "emp1", Date: "2025-03-31", Multiplier: 0.5},
		}},
		&fakeDebtRepo{},
	)

	_, err := svc.Generate(context.Background(), GenerateRequest{WeekEnding: weekEnding})
	assert.NoError(t, err)

	p := repo.rows[0]
	assert.Len(t, p.Attendance, 7)
	assert.Equal(t, "2025-03-31", p.Attendance[0].Date)
	assert.Equal(t, "2025-04-06", p.Attendance[6].Date)
	assert.Zero(t, p.Attendance[6].Multiplier)
	assert.InDelta(t, 500*0.5+500*1, p.GrossPay, 1e-9)
	assert.InDelta(t, p.GrossPay, p.NetPay, 1e-9)
	assert.Equal(t, StatusPending, p.Status)
}

func TestGenerate_DeductionClampedToDebtAndGross(t *testing.T) {
	cases := []struct {
		name      string
		debt      float64
		requested float64
		want      float64
	}{
		{"clamped to debt", 800, 5000, 800},
		{"clamped to gross", 10000, 9000, 3500}, // gross is 7×500
		{"negative request treated as zero", 800, -50, 0},
		{"credit balance deducts nothing", -200, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			debts := &fakeDebtRepo{}
			if tc.debt > 0 {
				debts.rows = []debt.Entry{{
					ID: "d1", EntityType: debt.EntityTypeEmployee, EntityID: "emp1",
					Type: debt.TypeCharge, Amount: tc.debt, Date: "2025-01-01",
				}}
			} else if tc.debt < 0 {
				debts.rows = []debt.Entry{{
					ID: "d1", EntityType: debt.EntityTypeEmployee, EntityID: "emp1",
					Type: debt.TypePayment, Amount: -tc.debt, Date: "2025-01-01",
				}}
			}

			repo := &fakeRepo{}
			svc := NewService(repo,
				&fakeEmployeeRepo{employees: []employee.Employee{{ID: "emp1", Name: "Pedro", Rate: 500}}},
				&fakeAttendanceRepo{rows: fullWeek("emp1", 1)},
				debts,
			)

			_, err := svc.Generate(context.Background(), GenerateRequest{
				WeekEnding: weekEnding,
				Deductions: map[string]float64{"emp1": tc.requested},
			})
			assert.NoError(t, err)

			p := repo.rows[0]
			assert.InDelta(t, tc.want, p.Deductions, 1e-9)
			assert.InDelta(t, p.GrossPay-tc.want, p.NetPay, 1e-9)
			assert.LessOrEqual(t, p.Deductions, p.GrossPay)
		})
	}
}

func TestMarkPaid_WritesDebtEntryBeforeStatusFlip(t *testing.T) {
	repo := &fakeRepo{rows: []Payroll{{
		ID: "p1", EmployeeID: "emp1", EmployeeName: "Pedro",
		WeekEnding: weekEnding, Deductions: 300, Status: StatusPending,
	}}}
	svc := NewService(repo, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeDebtRepo{})

	resp, err := svc.MarkPaid(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, StatusPaid, resp.Status)
	assert.NotEmpty(t, resp.PaidDate)
	assert.Equal(t, []string{"debt-entry", "status-flip"}, repo.ops)
}

func TestMarkPaid_NoDebtEntryWithoutDeduction(t *testing.T) {
	repo := &fakeRepo{rows: []Payroll{{
		ID: "p1", EmployeeID: "emp1", WeekEnding: weekEnding, Status: StatusPending,
	}}}
	svc := NewService(repo, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeDebtRepo{})

	_, err := svc.MarkPaid(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"status-flip"}, repo.ops)
}

func TestMarkPaid_OnlyPendingCanFlip(t *testing.T) {
	repo := &fakeRepo{rows: []Payroll{{ID: "p1", Status: StatusPaid}}}
	svc := NewService(repo, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeDebtRepo{})

	_, err := svc.MarkPaid(context.Background(), "p1")
	assert.Error(t, err)
	assert.Empty(t, repo.ops)
}
