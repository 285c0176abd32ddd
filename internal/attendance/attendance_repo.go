package attendance

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, a *Attendance) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	FindAll(ctx context.Context) ([]Attendance, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)
	FindForPeriod(ctx context.Context, employeeID, from, to string) ([]Attendance, error)
	FindByDates(ctx context.Context, dates []string) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(a).Error
}

func (r *repository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var items []Attendance
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		First(&a, "employee_id = ? AND date = ?", employeeID, date).Error
	return &a, err
}

func (r *repository) FindForPeriod(ctx context.Context, employeeID, from, to string) ([]Attendance, error) {
	var items []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, from, to).
		Order("date ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByDates(ctx context.Context, dates []string) ([]Attendance, error) {
	var items []Attendance
	err := r.db.WithContext(ctx).
		Where("date IN ?", dates).
		Find(&items).Error
	return items, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Attendance{}, "id = ?", id).Error
}
