package customer

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, c *Customer) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	FindAll(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id string) (*Customer, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(c).Error
}

// Patch merges only the named columns; a missing id is a no-op.
func (r *repository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := r.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Customer{}, "id = ?", id).Error
}
