package cheque

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, c *Cheque) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	FindAll(ctx context.Context) ([]Cheque, error)
	FindByID(ctx context.Context, id string) (*Cheque, error)
	FindFiltered(ctx context.Context, filter ListFilter) ([]Cheque, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, c *Cheque) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(c).Error
}

func (r *repository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Cheque{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Cheque, error) {
	var cheques []Cheque
	err := r.db.WithContext(ctx).Find(&cheques).Error
	return cheques, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Cheque, error) {
	var c Cheque
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindFiltered(ctx context.Context, filter ListFilter) ([]Cheque, error) {
	q := r.db.WithContext(ctx).Model(&Cheque{})
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		q = q.Where("due_date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("due_date <= ?", filter.To)
	}

	var cheques []Cheque
	err := q.Order("due_date ASC").Find(&cheques).Error
	return cheques, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Cheque{}, "id = ?", id).Error
}
