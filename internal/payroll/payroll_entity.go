package payroll

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// DayAttendance is one day of the week as captured at generation time.
type DayAttendance struct {
	Date       string  `json:"date"`
	Multiplier float64 `json:"multiplier"`
}

// Payroll is one employee's pay for one week, identified by the closing
// Sunday (weekEnding). The week's dates and attendance are frozen into the
// record; later attendance edits never change an existing payroll.
type Payroll struct {
	ID             string          `gorm:"primaryKey" json:"id"`
	EmployeeID     string          `gorm:"index" json:"employeeId"`
	EmployeeName   string          `json:"employeeName"`
	WeekEnding     string          `gorm:"index" json:"weekEnding"`
	MondayToSunday []string        `gorm:"serializer:json" json:"mondayToSunday"`
	Attendance     []DayAttendance `gorm:"serializer:json" json:"attendance"`
	Rate           float64         `json:"rate"`
	GrossPay       float64         `json:"grossPay"`
	Deductions     float64         `json:"deductions"`
	NetPay         float64         `json:"netPay"`
	PaidDate       string          `json:"paidDate,omitempty"`
	Status         string          `json:"status"`
}
