package employee

// Employee carries the daily pay rate used by payroll. Active is a pointer
// because records created before the field existed have no value; those
// count as active until toggled (schema step 8 backfills them to true).
type Employee struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"index" json:"name"`
	Position     string  `gorm:"index" json:"position"`
	Rate         float64 `json:"rate"`
	StoreID      string  `gorm:"index" json:"storeId"`
	Active       *bool   `json:"active,omitempty"`
	SssNo        string  `gorm:"index" json:"sssNo,omitempty"`
	PhilhealthNo string  `gorm:"index" json:"philhealthNo,omitempty"`
}

// IsActive treats a missing value as active, matching the legacy records.
func (e Employee) IsActive() bool {
	return e.Active == nil || *e.Active
}
