package store

// Store is a physical branch. Employees and sales reference it weakly by
// id; a deleted store leaves those references dangling on purpose.
type Store struct {
	ID        string `gorm:"primaryKey" json:"id"`
	StoreName string `gorm:"index" json:"storeName"`
	Address   string `json:"address"`
	Landline  string `json:"landline"`
}
