package attendance

// Attendance is one employee-day multiplier. The store has no uniqueness
// constraint on (employeeId, date); callers must look up before inserting.
// Multiplier scales the daily rate: 0 absent, 0.5 half day, 1.0 full day.
type Attendance struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	EmployeeID   string  `gorm:"index" json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `gorm:"index" json:"date"`
	Multiplier   float64 `json:"multiplier"`
	Notes        string  `json:"notes,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}
