package storage

import (
	"path/filepath"
	"testing"

	"chequebook/internal/employee"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSteps_ShippedVersionsNeverRenumbered(t *testing.T) {
	var versions []int
	for _, s := range Steps() {
		versions = append(versions, s.Version)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 6, 8}, versions)
}

func TestPending_SkipsAppliedKeepsOrder(t *testing.T) {
	steps := Steps()

	all := Pending(steps, map[int]bool{})
	assert.Len(t, all, len(steps))

	rest := Pending(steps, map[int]bool{1: true, 2: true, 3: true})
	var versions []int
	for _, s := range rest {
		versions = append(versions, s.Version)
	}
	assert.Equal(t, []int{5, 6, 8}, versions)

	none := Pending(steps, map[int]bool{1: true, 2: true, 3: true, 5: true, 6: true, 8: true})
	assert.Empty(t, none)
}

func TestPending_IgnoresUnknownAppliedVersions(t *testing.T) {
	// A database written by a newer build may record versions this build
	// does not know; they must not disturb the remaining order.
	rest := Pending(Steps(), map[int]bool{1: true, 99: true})
	assert.Equal(t, 2, rest[0].Version)
}

func TestMigrate_Version8BackfillsLegacyEmployees(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "upgrade.db")), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	// A row written before active/sss_no/philhealth_no existed: force the
	// columns back to NULL and make version 8 pending again.
	assert.NoError(t, db.Exec(
		`INSERT INTO employees (id, name, position, rate, store_id) VALUES (?, ?, ?, ?, ?)`,
		"e-legacy", "Old Timer", "Cashier", 500.0, "s1",
	).Error)
	assert.NoError(t, db.Exec(`DELETE FROM schema_versions WHERE version = 8`).Error)

	assert.NoError(t, Migrate(db))

	var e employee.Employee
	assert.NoError(t, db.First(&e, "id = ?", "e-legacy").Error)
	assert.NotNil(t, e.Active)
	assert.True(t, *e.Active)
	assert.Equal(t, "", e.SssNo)
	assert.Equal(t, "", e.PhilhealthNo)
	assert.Equal(t, "Old Timer", e.Name)
	assert.Equal(t, 500.0, e.Rate)
	assert.Equal(t, "s1", e.StoreID)
}

func TestMigrate_SecondRunLeavesBackfilledRowsAlone(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "rerun.db")), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	inactive := false
	assert.NoError(t, db.Create(&employee.Employee{
		ID: "e1", Name: "Mia", Rate: 550, Active: &inactive,
	}).Error)

	// Even with step 8 forced to re-apply, the backfill touches only NULLs.
	assert.NoError(t, db.Exec(`DELETE FROM schema_versions WHERE version = 8`).Error)
	assert.NoError(t, Migrate(db))
	assert.NoError(t, Migrate(db))

	var e employee.Employee
	assert.NoError(t, db.First(&e, "id = ?", "e1").Error)
	assert.NotNil(t, e.Active)
	assert.False(t, *e.Active, "an explicit inactive flag must survive a re-run")
}
