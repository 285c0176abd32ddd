package customer

type Customer struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"index" json:"name"`
	Mobile  string `gorm:"index" json:"mobile"`
	Address string `gorm:"index" json:"address,omitempty"`
	Email   string `gorm:"index" json:"email,omitempty"`
}
