package debt

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(ctx context.Context, e *Entry) error
	Patch(ctx context.Context, id string, fields map[string]any) error
	FindAll(ctx context.Context) ([]Entry, error)
	FindByID(ctx context.Context, id string) (*Entry, error)
	FindByEntity(ctx context.Context, entityType, entityID string) ([]Entry, error)
	FindByEntityType(ctx context.Context, entityType string) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(e).Error
}

func (r *repository) Patch(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).Find(&entries).Error
	return entries, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEntity(ctx context.Context, entityType, entityID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByEntityType(ctx context.Context, entityType string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("entity_type = ?", entityType).
		Find(&entries).Error
	return entries, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Entry{}, "id = ?", id).Error
}
