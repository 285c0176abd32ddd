package payee

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"chequebook/internal/shared/identifier"
	payeeerrors "chequebook/internal/payee/errors"
)

type Service interface {
	Create(ctx context.Context, req CreatePayeeRequest) (PayeeResponse, error)
	GetAll(ctx context.Context) ([]PayeeResponse, error)
	GetByID(ctx context.Context, id string) (PayeeResponse, error)
	Update(ctx context.Context, id string, req UpdatePayeeRequest) (PayeeResponse, error)
	Delete(ctx context.Context, id string) error
	BulkImport(ctx context.Context, req BulkImportRequest) (BulkImportResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePayeeRequest) (PayeeResponse, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return PayeeResponse{}, payeeerrors.ErrCompanyNameRequired
	}

	p := &Payee{
		ID:          identifier.New(),
		CompanyName: companyName,
		AgentName:   strings.TrimSpace(req.AgentName),
		Mobile:      strings.TrimSpace(req.Mobile),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return PayeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayeeResponse, error) {
	payees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(payees, func(i, j int) bool {
		return strings.ToLower(payees[i].CompanyName) < strings.ToLower(payees[j].CompanyName)
	})
	return mapToListResponse(payees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayeeResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayeeRequest) (PayeeResponse, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return PayeeResponse{}, payeeerrors.ErrCompanyNameRequired
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return PayeeResponse{}, err
	}

	p := &Payee{
		ID:          id,
		CompanyName: companyName,
		AgentName:   strings.TrimSpace(req.AgentName),
		Mobile:      strings.TrimSpace(req.Mobile),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return PayeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

var spaceRuns = regexp.MustCompile(`\s+`)
var twoPlusSpaces = regexp.MustCompile(`\s{2,}`)

// normalizeCompanyKey builds the dedupe key: trim, lowercase, collapse
// internal whitespace runs to single spaces.
func normalizeCompanyKey(s string) string {
	return spaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// parseImportLine splits a free-text row into company/agent/mobile. Prefer
// tab-separated; fall back to runs of two or more spaces; otherwise the
// whole line is the company name.
func parseImportLine(line string) (company, agent, mobile string) {
	parts := splitFields(line, "\t")
	if len(parts) <= 1 {
		parts = nil
		for _, f := range twoPlusSpaces.Split(line, -1) {
			if f = strings.TrimSpace(f); f != "" {
				parts = append(parts, f)
			}
		}
	}
	company = line
	if len(parts) > 0 {
		company = parts[0]
	}
	if len(parts) > 1 {
		agent = parts[1]
	}
	if len(parts) > 2 {
		mobile = parts[2]
	}
	return company, agent, mobile
}

func splitFields(line, sep string) []string {
	var out []string
	for _, f := range strings.Split(line, sep) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (r ImportRecord) companyName() string {
	return firstNonEmpty(r.CompanyName, r.Company, r.Name)
}

func (r ImportRecord) agentName() string {
	return firstNonEmpty(r.AgentName, r.Agent)
}

func (r ImportRecord) mobileNumber() string {
	return firstNonEmpty(r.Mobile, r.Phone, r.ContactNumber)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// BulkImport adds payees from pasted lines or structured records, skipping
// rows whose company name duplicates an existing one under the normalized
// key. Rows with an empty derived company name are skipped and counted.
func (s *service) BulkImport(ctx context.Context, req BulkImportRequest) (BulkImportResult, error) {
	if len(req.Lines) == 0 && len(req.Records) == 0 {
		return BulkImportResult{}, payeeerrors.ErrEmptyImportPayload
	}

	type row struct{ company, agent, mobile string }
	var rows []row

	for _, raw := range req.Lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		c, a, m := parseImportLine(line)
		rows = append(rows, row{c, a, m})
	}
	for _, rec := range req.Records {
		rows = append(rows, row{rec.companyName(), rec.agentName(), rec.mobileNumber()})
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return BulkImportResult{}, err
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[normalizeCompanyKey(p.CompanyName)] = true
	}

	var result BulkImportResult
	for _, r := range rows {
		key := normalizeCompanyKey(r.company)
		if key == "" || seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true
		p := &Payee{
			ID:          identifier.New(),
			CompanyName: strings.TrimSpace(r.company),
			AgentName:   strings.TrimSpace(r.agent),
			Mobile:      strings.TrimSpace(r.mobile),
		}
		// Saved one at a time; a storage failure stops the import with the
		// rows saved so far kept, same as the manual flow.
		if err := s.repo.Save(ctx, p); err != nil {
			return result, err
		}
		result.Added++
	}
	return result, nil
}
