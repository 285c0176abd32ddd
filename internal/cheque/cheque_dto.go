package cheque

type CreateChequeRequest struct {
	PayeeID string  `json:"payeeId" binding:"required"`
	Amount  float64 `json:"amount" binding:"gte=0"`
	DueDate string  `json:"dueDate" binding:"required"`
	Notes   string  `json:"notes"`
	// ChequeNo overrides the auto-number when present; fractional values
	// are truncated and anything below 1 becomes 1.
	ChequeNo *float64 `json:"chequeNo"`
}

type UpdateChequeRequest struct {
	Status  string `json:"status" binding:"required,oneof=pending paid bounced cancel replacement"`
	DueDate string `json:"dueDate" binding:"required"`
}

// ListFilter mirrors the cheque table's filter bar.
type ListFilter struct {
	Status string
	From   string
	To     string
	Query  string
}

type ChequeResponse struct {
	ID          string  `json:"id"`
	Payer       string  `json:"payer"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
	CompanyName string  `json:"companyName,omitempty"`
	Agent       string  `json:"agent,omitempty"`
	Mobile      string  `json:"mobile,omitempty"`
	ChequeNo    int     `json:"chequeNo"`
	PayeeID     string  `json:"payeeId,omitempty"`
}

type NextNumberResponse struct {
	NextChequeNo int `json:"nextChequeNo"`
}

func mapToResponse(c Cheque) ChequeResponse {
	return ChequeResponse{
		ID:          c.ID,
		Payer:       c.Payer,
		Amount:      c.Amount,
		DueDate:     c.DueDate,
		Status:      c.Status,
		Notes:       c.Notes,
		CompanyName: c.CompanyName,
		Agent:       c.Agent,
		Mobile:      c.Mobile,
		ChequeNo:    c.ChequeNo,
		PayeeID:     c.PayeeID,
	}
}

func mapToListResponse(cheques []Cheque) []ChequeResponse {
	resp := make([]ChequeResponse, len(cheques))
	for i, c := range cheques {
		resp[i] = mapToResponse(c)
	}
	return resp
}
