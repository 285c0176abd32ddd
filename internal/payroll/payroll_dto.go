package payroll

// GenerateRequest asks for one payroll per active employee for the given
// week. Deductions maps employeeId to the requested deduction amount; the
// service clamps each to the employee's debt and gross pay.
type GenerateRequest struct {
	WeekEnding string             `json:"weekEnding" binding:"required"`
	Deductions map[string]float64 `json:"deductions"`
}

type GenerateResult struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
}

type PayrollResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	EmployeeName   string          `json:"employeeName"`
	WeekEnding     string          `json:"weekEnding"`
	MondayToSunday []string        `json:"mondayToSunday"`
	Attendance     []DayAttendance `json:"attendance"`
	Rate           float64         `json:"rate"`
	GrossPay       float64         `json:"grossPay"`
	Deductions     float64         `json:"deductions"`
	NetPay         float64         `json:"netPay"`
	PaidDate       string          `json:"paidDate,omitempty"`
	Status         string          `json:"status"`
}

type HistoryTotals struct {
	GrossPay   float64 `json:"grossPay"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
}

// HistoryResponse lists payrolls newest week first, with totals over the
// listed rows.
type HistoryResponse struct {
	Payrolls []PayrollResponse `json:"payrolls"`
	Totals   HistoryTotals     `json:"totals"`
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		WeekEnding:     p.WeekEnding,
		MondayToSunday: p.MondayToSunday,
		Attendance:     p.Attendance,
		Rate:           p.Rate,
		GrossPay:       p.GrossPay,
		Deductions:     p.Deductions,
		NetPay:         p.NetPay,
		PaidDate:       p.PaidDate,
		Status:         p.Status,
	}
}
