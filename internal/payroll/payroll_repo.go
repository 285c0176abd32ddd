package payroll

import (
	"context"

	"chequebook/internal/debt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByEmployeeAndWeek(ctx context.Context, employeeID, weekEnding string) (*Payroll, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	MarkPaid(ctx context.Context, id, paidDate string, deduction *debt.Entry) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).Order("week_ending DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByEmployeeAndWeek(ctx context.Context, employeeID, weekEnding string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		First(&p, "employee_id = ? AND week_ending = ?", employeeID, weekEnding).Error
	return &p, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("week_ending DESC").
		Find(&payrolls).Error
	return payrolls, err
}

// MarkPaid flips the payroll to paid inside one transaction, writing the debt
// payment entry first so the debt reduction can never be lost after the
// status flip.
func (r *repository) MarkPaid(ctx context.Context, id, paidDate string, deduction *debt.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if deduction != nil {
			if err := tx.Create(deduction).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Payroll{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":    StatusPaid,
				"paid_date": paidDate,
			}).Error
	})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Payroll{}, "id = ?", id).Error
}
