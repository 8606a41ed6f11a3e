package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"inspectbook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// stateKey is the single storage key the whole application snapshot lives
// under. Changing it orphans existing on-device data.
const stateKey = "inspection_app_data"

type kvRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvRow) TableName() string { return "app_snapshots" }

// Migrate creates the snapshot table. Called once at startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&kvRow{})
}

// SnapshotRepository persists the full AppState as one JSON document under a
// fixed key. Save is a full overwrite; there is no partial merging.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load returns the stored snapshot, or (nil, nil) when none exists. Decode
// and I/O failures come back as errors; callers treat them as "start fresh".
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.AppState, error) {
	raw, err := getValue(ctx, r.db, stateKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	if state.Orders == nil {
		state.Orders = []domain.Order{}
	}
	return &state, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, state *domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return putValue(ctx, r.db, stateKey, raw)
}

// Clear removes the stored entry. Clearing an absent entry is a no-op.
func (r *SnapshotRepository) Clear(ctx context.Context) error {
	return deleteValue(ctx, r.db, stateKey)
}

func getValue(ctx context.Context, db *gorm.DB, key string) ([]byte, error) {
	var row kvRow
	if err := db.WithContext(ctx).Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Value, nil
}

func putValue(ctx context.Context, db *gorm.DB, key string, value []byte) error {
	now := time.Now()
	res := db.WithContext(ctx).Model(&kvRow{}).Where("key = ?", key).Updates(map[string]any{
		"value":      value,
		"updated_at": now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	err := db.WithContext(ctx).Create(&kvRow{Key: key, Value: value, UpdatedAt: now}).Error
	if err == nil {
		return nil
	}

	// Lost the insert race: another write created the row between the update
	// and the create. Retry as an update so this call's value still lands.
	if isDuplicateKey(err) {
		return db.WithContext(ctx).Model(&kvRow{}).Where("key = ?", key).Updates(map[string]any{
			"value":      value,
			"updated_at": now,
		}).Error
	}
	return err
}

func deleteValue(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Where("key = ?", key).Delete(&kvRow{}).Error
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
