package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	rows []Store
}

func (f *fakeRepo) Save(ctx context.Context, s *Store) error {
	f.rows = append(f.rows, *s)
	return nil
}

func (f *fakeRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if v, ok := fields["store_name"]; ok {
			f.rows[i].StoreName = v.(string)
		}
		if v, ok := fields["address"]; ok {
			f.rows[i].Address = v.(string)
		}
	}
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Store, error) {
	return append([]Store(nil), f.rows...), nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Store, error) {
	for _, s := range f.rows {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeRepo) ReplaceAll(ctx context.Context, stores []Store) error {
	f.rows = stores
	return nil
}

func TestCreate_RequiresStoreName(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateStoreRequest{StoreName: "  "})
	assert.Error(t, err)
	assert.Empty(t, repo.rows)

	resp, err := svc.Create(context.Background(), CreateStoreRequest{
		StoreName: " Main Branch ", Address: " Quezon Ave ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Main Branch", resp.StoreName)
	assert.Equal(t, "Quezon Ave", resp.Address)
}

func TestGetAll_SortedByStoreName(t *testing.T) {
	repo := &fakeRepo{rows: []Store{
		{ID: "1", StoreName: "west"},
		{ID: "2", StoreName: "East"},
	}}
	svc := NewService(repo)

	resp, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "East", resp[0].StoreName)
	assert.Equal(t, "west", resp[1].StoreName)
}

func TestReplaceAll_SwapsListAndAssignsMissingIDs(t *testing.T) {
	repo := &fakeRepo{rows: []Store{{ID: "old", StoreName: "Old Branch"}}}
	svc := NewService(repo)

	resp, err := svc.ReplaceAll(context.Background(), ReplaceAllRequest{Stores: []ReplaceStoreRecord{
		{ID: "s1", StoreName: " Main "},
		{StoreName: "Annex"},
	}})
	assert.NoError(t, err)
	assert.Len(t, repo.rows, 2)
	assert.Equal(t, "s1", resp[0].ID)
	assert.Equal(t, "Main", resp[0].StoreName)
	assert.NotEmpty(t, resp[1].ID)

	_, err = svc.ReplaceAll(context.Background(), ReplaceAllRequest{Stores: []ReplaceStoreRecord{
		{StoreName: "  "},
	}})
	assert.Error(t, err)
	assert.Len(t, repo.rows, 2, "failed replace must not touch the repo")
}

func TestUpdate_PatchesAndReloads(t *testing.T) {
	repo := &fakeRepo{rows: []Store{{ID: "s1", StoreName: "Main"}}}
	svc := NewService(repo)

	resp, err := svc.Update(context.Background(), "s1", UpdateStoreRequest{StoreName: "Main Branch"})
	assert.NoError(t, err)
	assert.Equal(t, "Main Branch", resp.StoreName)
}
