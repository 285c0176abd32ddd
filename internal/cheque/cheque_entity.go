package cheque

const (
	StatusPending     = "pending"
	StatusPaid        = "paid"
	StatusBounced     = "bounced"
	StatusCancel      = "cancel"
	StatusReplacement = "replacement"
)

// Cheque holds a weak payeeId reference plus company/agent/mobile copied
// from the payee at creation. Cheque numbers are advisory: duplicates are
// accepted, uniqueness is a bookkeeping convention only.
type Cheque struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Payer       string  `gorm:"index" json:"payer"`
	Amount      float64 `json:"amount"`
	DueDate     string  `gorm:"index;size:10" json:"dueDate"`
	Status      string  `gorm:"index" json:"status"`
	Notes       string  `json:"notes,omitempty"`
	CompanyName string  `json:"companyName,omitempty"`
	Agent       string  `json:"agent,omitempty"`
	Mobile      string  `json:"mobile,omitempty"`
	ChequeNo    int     `gorm:"index" json:"chequeNo"`
	PayeeID     string  `gorm:"index" json:"payeeId,omitempty"`
}
