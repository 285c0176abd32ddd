package attendance

import (
	"context"
	"testing"

	"chequebook/internal/employee"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	rows []Attendance
}

func (f *fakeRepo) Save(ctx context.Context, a *Attendance) error {
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if v, ok := fields["multiplier"]; ok {
			f.rows[i].Multiplier = v.(float64)
		}
	}
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Attendance, error) {
	return append([]Attendance(nil), f.rows...), nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Attendance, error) {
	for _, a := range f.rows {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error) {
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && a.Date == date {
			cp := a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindForPeriod(ctx context.Context, employeeID, from, to string) ([]Attendance, error) {
	var out []Attendance
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByDates(ctx context.Context, dates []string) ([]Attendance, error) {
	in := make(map[string]bool, len(dates))
	for _, d := range dates {
		in[d] = true
	}
	var out []Attendance
	for _, a := range f.rows {
		if in[a.Date] {
			out = append(out, a)
		}
	}
	return out, nil
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
	f.employees = employees
	return nil
}

func boolPtr(v bool) *bool { return &v }

func TestWeekDates(t *testing.T) {
	dates, err := WeekDates("2025-04-06")
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-31", "2025-04-01", "2025-04-02", "2025-04-03",
		"2025-04-04", "2025-04-05", "2025-04-06",
	}, dates)

	_, err = WeekDates("not-a-date")
	assert.Error(t, err)
}

func TestSetMultiplier_InsertsOncePerEmployeeDay(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp1", Name: "Pedro"},
	}})

	first, err := svc.SetMultiplier(context.Background(), SetMultiplierRequest{
		EmployeeID: "emp1", Date: "2025-04-01", Multiplier: 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Pedro", first.EmployeeName)

	second, err := svc.SetMultiplier(context.Background(), SetMultiplierRequest{
		EmployeeID: "emp1", Date: "2025-04-01", Multiplier: 0.5,
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)
	assert.InDelta(t, 0.5, repo.rows[0].Multiplier, 1e-9)
}

func TestSetMultiplier_UnknownEmployeeRejected(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeEmployeeRepo{})

	_, err := svc.SetMultiplier(context.Background(), SetMultiplierRequest{
		EmployeeID: "ghost", Date: "2025-04-01", Multiplier: 1,
	})
	assert.Error(t, err)
}

func TestWeekGrid_ActiveEmployeesWithZeroDefaults(t *testing.T) {
	repo := &fakeRepo{rows: []Attendance{
		{ID: "a1", EmployeeID: "emp1", Date: "2025-04-02", Multiplier: 0.9},
	}}
	svc := NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp2", Name: "Ana"},
		{ID: "emp1", Name: "Pedro"},
		{ID: "emp3", Name: "Carlos", Active: boolPtr(false)},
	}})

	grid, err := svc.WeekGrid(context.Background(), "2025-04-06")
	assert.NoError(t, err)
	assert.Len(t, grid.Dates, 7)

	// Inactive employee dropped, the rest sorted by name.
	assert.Len(t, grid.Rows, 2)
	assert.Equal(t, "Ana", grid.Rows[0].EmployeeName)
	assert.Equal(t, "Pedro", grid.Rows[1].EmployeeName)

	pedro := grid.Rows[1]
	assert.Len(t, pedro.Days, 7)
	for _, day := range pedro.Days {
		if day.Date == "2025-04-02" {
			assert.InDelta(t, 0.9, day.Multiplier, 1e-9)
		} else {
			assert.Zero(t, day.Multiplier)
		}
	}
}
