package debt

const (
	EntityTypeCustomer = "customer"
	EntityTypeEmployee = "employee"
)

const (
	TypeCharge  = "charge"
	TypePayment = "payment"
)

// Entry is one ledger row. A positive balance means the entity owes money:
// charges add, payments subtract. EntityName is a display snapshot taken when
// the entry is written; entityId may dangle after the entity is deleted.
type Entry struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	EntityType  string  `gorm:"index" json:"entityType"`
	EntityID    string  `gorm:"index" json:"entityId"`
	EntityName  string  `json:"entityName"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

func (Entry) TableName() string {
	return "debts"
}

// SignedAmount is +amount for a charge and −amount for a payment.
func (e Entry) SignedAmount() float64 {
	if e.Type == TypePayment {
		return -e.Amount
	}
	return e.Amount
}
