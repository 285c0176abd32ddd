package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	rows []Customer
}

func (f *fakeRepo) Save(ctx context.Context, c *Customer) error {
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if v, ok := fields["name"]; ok {
			f.rows[i].Name = v.(string)
		}
		if v, ok := fields["mobile"]; ok {
			f.rows[i].Mobile = v.(string)
		}
	}
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Customer, error) {
	return append([]Customer(nil), f.rows...), nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Customer, error) {
	for _, c := range f.rows {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func TestCreate_RequiresNameAfterTrim(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "   "})
	assert.Error(t, err)
	assert.Empty(t, repo.rows)

	resp, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "  Maria  ", Mobile: " 0900 "})
	assert.NoError(t, err)
	assert.Equal(t, "Maria", resp.Name)
	assert.Equal(t, "0900", resp.Mobile)
	assert.NotEmpty(t, resp.ID)
}

func TestGetAll_SortedByNameCaseInsensitive(t *testing.T) {
	repo := &fakeRepo{rows: []Customer{
		{ID: "1", Name: "zack"},
		{ID: "2", Name: "Ana"},
		{ID: "3", Name: "maria"},
	}}
	svc := NewService(repo)

	resp, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Ana", "maria", "zack"}, []string{resp[0].Name, resp[1].Name, resp[2].Name})
}

func TestUpdate_PatchesAndReloads(t *testing.T) {
	repo := &fakeRepo{rows: []Customer{{ID: "c1", Name: "Maria", Mobile: "0900"}}}
	svc := NewService(repo)

	resp, err := svc.Update(context.Background(), "c1", UpdateCustomerRequest{Name: "Maria Santos", Mobile: "0901"})
	assert.NoError(t, err)
	assert.Equal(t, "Maria Santos", resp.Name)
	assert.Equal(t, "0901", resp.Mobile)
}
