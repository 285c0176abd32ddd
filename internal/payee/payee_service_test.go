package payee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	saved []Payee
}

func (f *fakeRepo) Save(ctx context.Context, p *Payee) error {
	for i, existing := range f.saved {
		if existing.ID == p.ID {
			f.saved[i] = *p
			return nil
		}
	}
	f.saved = append(f.saved, *p)
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Payee, error) {
	return append([]Payee(nil), f.saved...), nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Payee, error) {
	for _, p := range f.saved {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i, p := range f.saved {
		if p.ID == id {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestService_Create_TrimsAndRejectsEmptyCompany(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePayeeRequest{CompanyName: "   "})
	assert.Error(t, err)
	assert.Empty(t, repo.saved)

	resp, err := svc.Create(ctx, CreatePayeeRequest{CompanyName: "  Acme Corp  ", AgentName: " John "})
	assert.NoError(t, err)
	assert.Equal(t, "Acme Corp", resp.CompanyName)
	assert.Equal(t, "John", resp.AgentName)
	assert.NotEmpty(t, resp.ID)
}

func TestService_BulkImport_TabLinesWithDuplicate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	res, err := svc.BulkImport(context.Background(), BulkImportRequest{
		Lines: []string{
			"Acme Corp\tJohn\t0900000001",
			"Acme Corp\tOther\t0900000002",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, repo.saved, 1)
	assert.Equal(t, "Acme Corp", repo.saved[0].CompanyName)
	assert.Equal(t, "John", repo.saved[0].AgentName)
	assert.Equal(t, "0900000001", repo.saved[0].Mobile)
}

func TestService_BulkImport_SpaceFallbackAndCompanyOnly(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	res, err := svc.BulkImport(context.Background(), BulkImportRequest{
		Lines: []string{
			"Globex Trading   Maria   0911222333",
			"Single Name Supplier",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, "Globex Trading", repo.saved[0].CompanyName)
	assert.Equal(t, "Maria", repo.saved[0].AgentName)
	assert.Equal(t, "0911222333", repo.saved[0].Mobile)
	// No delimiter: whole line is the company, rest default empty.
	assert.Equal(t, "Single Name Supplier", repo.saved[1].CompanyName)
	assert.Empty(t, repo.saved[1].AgentName)
}

func TestService_BulkImport_DedupesAgainstExistingCaseInsensitive(t *testing.T) {
	repo := &fakeRepo{saved: []Payee{{ID: "p1", CompanyName: "Acme  Corp"}}}
	svc := NewService(repo)

	res, err := svc.BulkImport(context.Background(), BulkImportRequest{
		Lines: []string{"  acme corp \tX\t1"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 1, res.Skipped)
}

func TestService_BulkImport_StructuredRecords(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	res, err := svc.BulkImport(context.Background(), BulkImportRequest{
		Records: []ImportRecord{
			{Company: "Initech", Agent: "Peter", Phone: "0987"},
			{Name: ""},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Skipped) // empty company counted, never saved
	assert.Equal(t, "Initech", repo.saved[0].CompanyName)
	assert.Equal(t, "Peter", repo.saved[0].AgentName)
	assert.Equal(t, "0987", repo.saved[0].Mobile)
}

func TestService_BulkImport_EmptyPayloadRejected(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.BulkImport(context.Background(), BulkImportRequest{})
	assert.Error(t, err)
}
