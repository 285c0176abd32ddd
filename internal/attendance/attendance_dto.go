package attendance

// SetMultiplierRequest upserts one cell of the weekly grid. Multiplier is
// deliberately not range-checked; values outside [0,1] scale pay as-is.
type SetMultiplierRequest struct {
	EmployeeID string  `json:"employeeId" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Multiplier float64 `json:"multiplier"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Date         string  `json:"date"`
	Multiplier   float64 `json:"multiplier"`
	Notes        string  `json:"notes,omitempty"`
}

type DayCell struct {
	Date       string  `json:"date"`
	Multiplier float64 `json:"multiplier"`
}

type EmployeeWeekRow struct {
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Days         []DayCell `json:"days"`
}

// WeekGridResponse is the attendance tab: one row per active employee, one
// cell per day of the week, missing records shown as 0.
type WeekGridResponse struct {
	WeekEnding string            `json:"weekEnding"`
	Dates      []string          `json:"dates"`
	Rows       []EmployeeWeekRow `json:"rows"`
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date,
		Multiplier:   a.Multiplier,
		Notes:        a.Notes,
	}
}

func mapToListResponse(items []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(items))
	for i, a := range items {
		resp[i] = mapToResponse(a)
	}
	return resp
}
