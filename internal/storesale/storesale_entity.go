package storesale

// StoreSale is a day's takings for one store and cashier. The storeName and
// cashierName fields are snapshots copied at creation; renaming the store
// or employee later does not rewrite them.
type StoreSale struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	StoreID     string  `gorm:"index" json:"storeId"`
	StoreName   string  `json:"storeName"`
	CashierID   string  `gorm:"index" json:"cashierId"`
	CashierName string  `json:"cashierName"`
	Sales       float64 `json:"sales"`
	Remit       float64 `json:"remit"`
	Date        string  `gorm:"index;size:10" json:"date"`
}

// Dexie kept this table as "sales".
func (StoreSale) TableName() string {
	return "sales"
}
