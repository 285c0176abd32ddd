package employee

type CreateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position string  `json:"position"`
	Rate     float64 `json:"rate" binding:"gt=0"`
	StoreID  string  `json:"storeId"`
	SssNo    string  `json:"sssNo"`
	PhilNo   string  `json:"philhealthNo"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position string  `json:"position"`
	Rate     float64 `json:"rate" binding:"gt=0"`
	StoreID  string  `json:"storeId"`
	SssNo    string  `json:"sssNo"`
	PhilNo   string  `json:"philhealthNo"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Rate         float64 `json:"rate"`
	StoreID      string  `json:"storeId"`
	StoreName    string  `json:"storeName,omitempty"`
	Active       bool    `json:"active"`
	SssNo        string  `json:"sssNo,omitempty"`
	PhilhealthNo string  `json:"philhealthNo,omitempty"`
}

// ReplaceEmployeeRecord is one row of a whole-roster replacement. Records
// without an id are treated as new; active is tri-state like the stored
// field (nil reads as active).
type ReplaceEmployeeRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" binding:"required"`
	Position     string  `json:"position"`
	Rate         float64 `json:"rate"`
	StoreID      string  `json:"storeId"`
	Active       *bool   `json:"active"`
	SssNo        string  `json:"sssNo"`
	PhilhealthNo string  `json:"philhealthNo"`
}

type ReplaceAllRequest struct {
	Employees []ReplaceEmployeeRecord `json:"employees" binding:"required"`
}

// EmployeeOption is the slim shape pickers use.
type EmployeeOption struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Position:     e.Position,
		Rate:         e.Rate,
		StoreID:      e.StoreID,
		Active:       e.IsActive(),
		SssNo:        e.SssNo,
		PhilhealthNo: e.PhilhealthNo,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
