package storesale

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, s *StoreSale) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	FindAll(ctx context.Context) ([]StoreSale, error)
	FindByID(ctx context.Context, id string) (*StoreSale, error)
	FindFiltered(ctx context.Context, storeID, from, to string) ([]StoreSale, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, s *StoreSale) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(s).Error
}

func (r *repository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&StoreSale{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) FindAll(ctx context.Context) ([]StoreSale, error) {
	var sales []StoreSale
	err := r.db.WithContext(ctx).Find(&sales).Error
	return sales, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*StoreSale, error) {
	var s StoreSale
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

// FindFiltered narrows by store and inclusive date range; empty arguments
// mean no constraint. Dates are yyyy-MM-dd strings, so string comparison is
// chronological.
func (r *repository) FindFiltered(ctx context.Context, storeID, from, to string) ([]StoreSale, error) {
	q := r.db.WithContext(ctx).Model(&StoreSale{})
	if storeID != "" {
		q = q.Where("store_id = ?", storeID)
	}
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var sales []StoreSale
	err := q.Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&StoreSale{}, "id = ?", id).Error
}
