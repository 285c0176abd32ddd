package backup

import (
	"context"
	"testing"

	"chequebook/internal/payee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return gdb, mock
}

func TestImport_EmptySnapshotRejectedBeforeAnyWrite(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewService(gdb)

	_, err := svc.Import(context.Background(), Snapshot{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImport_ReplacesOnlyPresentKindsInOneTransaction(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewService(gdb)

	payees := []payee.Payee{
		{ID: "p1", CompanyName: "Acme Corp", AgentName: "John"},
		{ID: "p2", CompanyName: "Globex"},
	}
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "payees"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "payees"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	result, err := svc.Import(context.Background(), Snapshot{Payees: &payees})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Restored["payees"])
	assert.Equal(t, 2, result.Total)
	assert.NotContains(t, result.Restored, "cheques")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImport_PresentButEmptyKindOnlyClears(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewService(gdb)

	empty := []payee.Payee{}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "payees"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	result, err := svc.Import(context.Background(), Snapshot{Payees: &empty})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Restored["payees"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImport_FailureRollsBackWholeRestore(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewService(gdb)

	payees := []payee.Payee{{ID: "p1", CompanyName: "Acme Corp"}}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "payees"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Import(context.Background(), Snapshot{Payees: &payees})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
