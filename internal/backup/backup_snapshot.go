package backup

import (
	"chequebook/internal/attendance"
	"chequebook/internal/cheque"
	"chequebook/internal/customer"
	"chequebook/internal/debt"
	"chequebook/internal/employee"
	"chequebook/internal/payee"
	"chequebook/internal/payroll"
	"chequebook/internal/store"
	"chequebook/internal/storesale"
)

// Snapshot is the full-dataset backup format: one field per record kind.
// Pointers distinguish "kind absent from the payload" (nil, leave that
// kind's data untouched on import) from "kind present but empty" (clear it).
type Snapshot struct {
	Cheques    *[]cheque.Cheque         `json:"cheques,omitempty"`
	Payees     *[]payee.Payee           `json:"payees,omitempty"`
	Sales      *[]storesale.StoreSale   `json:"sales,omitempty"`
	Employees  *[]employee.Employee     `json:"employees,omitempty"`
	Stores     *[]store.Store           `json:"stores,omitempty"`
	Customers  *[]customer.Customer     `json:"customers,omitempty"`
	Debts      *[]debt.Entry            `json:"debts,omitempty"`
	Attendance *[]attendance.Attendance `json:"attendance,omitempty"`
	Payrolls   *[]payroll.Payroll       `json:"payrolls,omitempty"`
}

// Kinds names every record kind a snapshot can carry, in export order.
func Kinds() []string {
	return []string{
		"cheques", "payees", "sales", "employees", "stores",
		"customers", "debts", "attendance", "payrolls",
	}
}

// IsEmpty reports whether no kind is present at all, which on import would
// be a no-op and is almost certainly a caller mistake.
func (s Snapshot) IsEmpty() bool {
	return s.Cheques == nil && s.Payees == nil && s.Sales == nil &&
		s.Employees == nil && s.Stores == nil && s.Customers == nil &&
		s.Debts == nil && s.Attendance == nil && s.Payrolls == nil
}

// ImportResult reports how many records each present kind was restored with.
type ImportResult struct {
	Restored map[string]int `json:"restored"`
	Total    int            `json:"total"`
}
