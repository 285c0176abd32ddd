package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, s *Store) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	FindAll(ctx context.Context) ([]Store, error)
	FindByID(ctx context.Context, id string) (*Store, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, stores []Store) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, s *Store) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(s).Error
}

func (r *repository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Store{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Store, error) {
	var stores []Store
	err := r.db.WithContext(ctx).Find(&stores).Error
	return stores, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Store, error) {
	var s Store
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Store{}, "id = ?", id).Error
}

// ReplaceAll swaps the whole table for the given set in one transaction.
func (r *repository) ReplaceAll(ctx context.Context, stores []Store) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Store{}).Error; err != nil {
			return err
		}
		if len(stores) == 0 {
			return nil
		}
		return tx.Create(&stores).Error
	})
}
