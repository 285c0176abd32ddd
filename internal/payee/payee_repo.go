package payee

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, p *Payee) error
	FindAll(ctx context.Context) ([]Payee, error)
	FindByID(ctx context.Context, id string) (*Payee, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Save upserts by id: create when absent, full replace when present.
func (r *repository) Save(ctx context.Context, p *Payee) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payee, error) {
	var payees []Payee
	err := r.db.WithContext(ctx).Find(&payees).Error
	return payees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payee, error) {
	var p Payee
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Payee{}, "id = ?", id).Error
}
