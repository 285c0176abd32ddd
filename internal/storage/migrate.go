package storage

import (
	"time"

	"chequebook/internal/attendance"
	"chequebook/internal/cheque"
	"chequebook/internal/customer"
	"chequebook/internal/debt"
	"chequebook/internal/employee"
	"chequebook/internal/payee"
	"chequebook/internal/payroll"
	"chequebook/internal/store"
	"chequebook/internal/storesale"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SchemaVersion records one applied migration step.
type SchemaVersion struct {
	Version   int       `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (SchemaVersion) TableName() string {
	return "schema_versions"
}

// Step is one shipped schema version. Version numbers are part of the
// durable contract: once shipped they are never renumbered or removed,
// which is why the sequence has gaps (4 and 7 were never released).
type Step struct {
	Version int
	Name    string
	Apply   func(tx *gorm.DB) error
}

// Steps lists every shipped schema version in order.
func Steps() []Step {
	return []Step{
		{
			Version: 1,
			Name:    "cheques and payees",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&cheque.Cheque{}, &payee.Payee{})
			},
		},
		{
			Version: 2,
			Name:    "cheque number and payee reference indexes",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&cheque.Cheque{})
			},
		},
		{
			Version: 3,
			Name:    "store sales",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&storesale.StoreSale{})
			},
		},
		{
			Version: 5,
			Name:    "employees, stores and customers",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&employee.Employee{}, &store.Store{}, &customer.Customer{})
			},
		},
		{
			Version: 6,
			Name:    "debt ledger",
			Apply: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&debt.Entry{})
			},
		},
		{
			Version: 8,
			Name:    "attendance and payrolls, employee backfill",
			Apply: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&attendance.Attendance{}, &payroll.Payroll{}, &employee.Employee{}); err != nil {
					return err
				}
				// Pre-existing employees predate these columns; default them
				// rather than leaving holes.
				if err := tx.Model(&employee.Employee{}).
					Where("active IS NULL").
					Update("active", true).Error; err != nil {
					return err
				}
				if err := tx.Model(&employee.Employee{}).
					Where("sss_no IS NULL").
					Update("sss_no", "").Error; err != nil {
					return err
				}
				return tx.Model(&employee.Employee{}).
					Where("philhealth_no IS NULL").
					Update("philhealth_no", "").Error
			},
		},
	}
}

// Pending filters steps down to the ones newer than anything applied,
// preserving order.
func Pending(steps []Step, applied map[int]bool) []Step {
	var out []Step
	for _, s := range steps {
		if !applied[s.Version] {
			out = append(out, s)
		}
	}
	return out
}

// Migrate brings the database to the latest schema version. Safe to run on
// every start: applied versions are skipped, and each step tolerates
// pre-existing data.
func Migrate(db *gorm.DB, logger ...*zap.Logger) error {
	l := zap.L().Named("storage.migrate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.migrate")
	}

	if err := db.AutoMigrate(&SchemaVersion{}); err != nil {
		return err
	}

	var versions []SchemaVersion
	if err := db.Find(&versions).Error; err != nil {
		return err
	}
	applied := make(map[int]bool, len(versions))
	for _, v := range versions {
		applied[v.Version] = true
	}

	for _, step := range Pending(Steps(), applied) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaVersion{Version: step.Version}).Error
		})
		if err != nil {
			l.Error("schema step failed",
				zap.Int("version", step.Version),
				zap.String("name", step.Name),
				zap.Error(err),
			)
			return err
		}
		l.Info("schema step applied",
			zap.Int("version", step.Version),
			zap.String("name", step.Name),
		)
	}
	return nil
}
