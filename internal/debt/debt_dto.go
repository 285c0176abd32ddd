package debt

type CreateEntryRequest struct {
	EntityType  string  `json:"entityType" binding:"required,oneof=customer employee"`
	EntityID    string  `json:"entityId" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=charge payment"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

type UpdateEntryRequest struct {
	Type        string  `json:"type" binding:"required,oneof=charge payment"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

type EntryResponse struct {
	ID          string  `json:"id"`
	EntityType  string  `json:"entityType"`
	EntityID    string  `json:"entityId"`
	EntityName  string  `json:"entityName"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

// LedgerLine is one entry plus the balance after applying it.
type LedgerLine struct {
	Entry          EntryResponse `json:"entry"`
	RunningBalance float64       `json:"runningBalance"`
}

// EntityBalance groups one entity's entries with its current total.
type EntityBalance struct {
	EntityID   string       `json:"entityId"`
	EntityName string       `json:"entityName"`
	Balance    float64      `json:"balance"`
	Lines      []LedgerLine `json:"lines"`
}

type LedgerSummary struct {
	TotalCharges  float64 `json:"totalCharges"`
	TotalPayments float64 `json:"totalPayments"`
	NetBalance    float64 `json:"netBalance"`
}

// BalancesResponse splits entities with at least one entry into those still
// owing (balance ≠ 0) and those settled, both sorted by name.
type BalancesResponse struct {
	Active  []EntityBalance `json:"active"`
	Cleared []EntityBalance `json:"cleared"`
	Summary LedgerSummary   `json:"summary"`
}

type BalanceResponse struct {
	EntityType string  `json:"entityType"`
	EntityID   string  `json:"entityId"`
	Balance    float64 `json:"balance"`
}

func mapToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		EntityName:  e.EntityName,
		Type:        e.Type,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
	}
}
