package payee

// Payee is who a cheque is written out to. Cheques keep a weak reference
// (payeeId) plus copied name fields; deleting a payee never cascades.
type Payee struct {
	ID          string `gorm:"primaryKey" json:"id"`
	CompanyName string `gorm:"index" json:"companyName"`
	AgentName   string `gorm:"index" json:"agentName"`
	Mobile      string `json:"mobile"`
}
