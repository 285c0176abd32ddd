package backup

import (
	"context"
	"path/filepath"
	"testing"

	"chequebook/internal/attendance"
	"chequebook/internal/cheque"
	"chequebook/internal/customer"
	"chequebook/internal/debt"
	"chequebook/internal/employee"
	"chequebook/internal/payee"
	"chequebook/internal/payroll"
	"chequebook/internal/storage"
	"chequebook/internal/store"
	"chequebook/internal/storesale"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// a file-backed database: ":memory:" gives each pooled connection its own
// dataset, which silently breaks multi-statement tests.
func newSQLiteDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), name)), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, storage.Migrate(db))
	return db
}

func fullSnapshot() Snapshot {
	active := true
	return Snapshot{
		Cheques: &[]cheque.Cheque{
			{ID: "c1", Payer: "Acme Corp", Amount: 12500.50, DueDate: "2025-05-02",
				Status: cheque.StatusPending, ChequeNo: 1351, PayeeID: "p1",
				CompanyName: "Acme Corp", Agent: "John", Mobile: "0917"},
		},
		Payees: &[]payee.Payee{
			{ID: "p1", CompanyName: "Acme Corp", AgentName: "John", Mobile: "0917"},
		},
		Sales: &[]storesale.StoreSale{
			{ID: "sl1", StoreID: "s1", StoreName: "Main", CashierID: "e1",
				CashierName: "Mia", Sales: 40000, Remit: 39500, Date: "2025-04-01"},
		},
		Employees: &[]employee.Employee{
			{ID: "e1", Name: "Mia", Position: "Cashier", Rate: 550, StoreID: "s1",
				Active: &active, SssNo: "34-111", PhilhealthNo: "PH-222"},
		},
		Stores: &[]store.Store{
			{ID: "s1", StoreName: "Main", Address: "Quezon Ave", Landline: "8-123"},
		},
		Customers: &[]customer.Customer{
			{ID: "cu1", Name: "Dela Cruz", Mobile: "0918", Address: "Manila"},
		},
		Debts: &[]debt.Entry{
			{ID: "d1", EntityType: debt.EntityTypeCustomer, EntityID: "cu1",
				EntityName: "Dela Cruz", Type: debt.TypeCharge, Amount: 800,
				Date: "2025-03-10", Description: "Groceries"},
		},
		Attendance: &[]attendance.Attendance{
			{ID: "a1", EmployeeID: "e1", EmployeeName: "Mia", Date: "2025-03-31",
				Multiplier: 1, Notes: "half shift covered"},
		},
		Payrolls: &[]payroll.Payroll{
			{ID: "pr1", EmployeeID: "e1", EmployeeName: "Mia",
				WeekEnding: "2025-04-06",
				MondayToSunday: []string{
					"2025-03-31", "2025-04-01", "2025-04-02", "2025-04-03",
					"2025-04-04", "2025-04-05", "2025-04-06",
				},
				Attendance: []payroll.DayAttendance{
					{Date: "2025-03-31", Multiplier: 1},
					{Date: "2025-04-01", Multiplier: 0.5},
				},
				Rate: 550, GrossPay: 825, Deductions: 100, NetPay: 725,
				Status: payroll.StatusPending},
		},
	}
}

func TestExportImport_RoundTripReproducesEveryKind(t *testing.T) {
	ctx := context.Background()
	seeded := fullSnapshot()

	src := newSQLiteDB(t, "source.db")
	_, err := NewService(src).Import(ctx, seeded)
	assert.NoError(t, err)

	exported, err := NewService(src).Export(ctx)
	assert.NoError(t, err)
	assert.Equal(t, seeded, exported)

	dst := newSQLiteDB(t, "restore.db")
	result, err := NewService(dst).Import(ctx, exported)
	assert.NoError(t, err)
	assert.Len(t, result.Restored, len(Kinds()))
	assert.Equal(t, 9, result.Total)

	restored, err := NewService(dst).Export(ctx)
	assert.NoError(t, err)
	assert.Equal(t, exported, restored)

	// The JSON-serialized payroll columns survive both hops verbatim.
	pr := (*restored.Payrolls)[0]
	assert.Equal(t, (*seeded.Payrolls)[0].MondayToSunday, pr.MondayToSunday)
	assert.Equal(t, (*seeded.Payrolls)[0].Attendance, pr.Attendance)
}

func TestExport_EmptyDatabaseExportsEmptyPresentKinds(t *testing.T) {
	db := newSQLiteDB(t, "empty.db")

	snap, err := NewService(db).Export(context.Background())
	assert.NoError(t, err)
	assert.False(t, snap.IsEmpty())
	assert.NotNil(t, snap.Cheques)
	assert.Empty(t, *snap.Cheques)
	assert.NotNil(t, snap.Payrolls)
	assert.Empty(t, *snap.Payrolls)
}
