package backup

import (
	"context"

	backuperrors "chequebook/internal/backup/errors"
	"chequebook/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const insertBatchSize = 200

type Service interface {
	Export(ctx context.Context) (Snapshot, error)
	Import(ctx context.Context, snap Snapshot) (ImportResult, error)
}

type service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger ...*zap.Logger) Service {
	l := zap.L().Named("backup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backup.service")
	}
	return &service{db: db, logger: l}
}

// Export reads every record of every kind verbatim. All nine fields are set,
// so a kind with no records exports as an empty list, not an absent one.
func (s *service) Export(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, read := range []func(*gorm.DB) error{
			readKind(&snap.Cheques),
			readKind(&snap.Payees),
			readKind(&snap.Sales),
			readKind(&snap.Employees),
			readKind(&snap.Stores),
			readKind(&snap.Customers),
			readKind(&snap.Debts),
			readKind(&snap.Attendance),
			readKind(&snap.Payrolls),
		} {
			if err := read(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Import replaces the data of every kind present in the snapshot: delete all
// rows of that kind, then insert the snapshot's rows. The whole restore runs
// in one transaction, so a failure partway leaves the previous data intact
// instead of a mix of old and new kinds. Absent kinds are untouched.
func (s *service) Import(ctx context.Context, snap Snapshot) (ImportResult, error) {
	if snap.IsEmpty() {
		return ImportResult{}, backuperrors.ErrEmptySnapshot
	}

	result := ImportResult{Restored: make(map[string]int)}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, kind := range []struct {
			name    string
			replace func(*gorm.DB) (int, error)
		}{
			{"cheques", replaceKind(snap.Cheques)},
			{"payees", replaceKind(snap.Payees)},
			{"sales", replaceKind(snap.Sales)},
			{"employees", replaceKind(snap.Employees)},
			{"stores", replaceKind(snap.Stores)},
			{"customers", replaceKind(snap.Customers)},
			{"debts", replaceKind(snap.Debts)},
			{"attendance", replaceKind(snap.Attendance)},
			{"payrolls", replaceKind(snap.Payrolls)},
		} {
			n, err := kind.replace(tx)
			if err != nil {
				return err
			}
			if n >= 0 {
				result.Restored[kind.name] = n
				result.Total += n
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("snapshot imported",
		zap.Int("kinds", len(result.Restored)),
		zap.Int("records", result.Total),
	)
	return result, nil
}

func readKind[T any](dst **[]T) func(*gorm.DB) error {
	return func(tx *gorm.DB) error {
		rows := []T{}
		if err := tx.Find(&rows).Error; err != nil {
			return err
		}
		*dst = &rows
		return nil
	}
}

// replaceKind clears and reloads one kind's table. A nil slice means the
// kind was absent from the payload and reports -1 without touching anything.
func replaceKind[T any](rows *[]T) func(*gorm.DB) (int, error) {
	return func(tx *gorm.DB) (int, error) {
		if rows == nil {
			return -1, nil
		}
		var model T
		if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
			return 0, err
		}
		if len(*rows) == 0 {
			return 0, nil
		}
		if err := tx.CreateInBatches(*rows, insertBatchSize).Error; err != nil {
			return 0, err
		}
		return len(*rows), nil
	}
}
