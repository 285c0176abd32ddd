package payee

type CreatePayeeRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	AgentName   string `json:"agentName"`
	Mobile      string `json:"mobile"`
}

type UpdatePayeeRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	AgentName   string `json:"agentName"`
	Mobile      string `json:"mobile"`
}

// ImportRecord is the structured form of one bulk-import row. Field names
// vary across exports, so each attribute accepts the spellings seen in the
// wild and the first non-empty one wins.
type ImportRecord struct {
	CompanyName   string `json:"companyName"`
	Company       string `json:"company"`
	Name          string `json:"name"`
	AgentName     string `json:"agentName"`
	Agent         string `json:"agent"`
	Mobile        string `json:"mobile"`
	Phone         string `json:"phone"`
	ContactNumber string `json:"contactNumber"`
}

// BulkImportRequest carries either free-text lines or structured records.
// Exactly one of the two shapes must be present.
type BulkImportRequest struct {
	Lines   []string       `json:"lines"`
	Records []ImportRecord `json:"records"`
}

type BulkImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

type PayeeResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	AgentName   string `json:"agentName"`
	Mobile      string `json:"mobile"`
}

func mapToResponse(p Payee) PayeeResponse {
	return PayeeResponse{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		AgentName:   p.AgentName,
		Mobile:      p.Mobile,
	}
}

func mapToListResponse(payees []Payee) []PayeeResponse {
	resp := make([]PayeeResponse, len(payees))
	for i, p := range payees {
		resp[i] = mapToResponse(p)
	}
	return resp
}
