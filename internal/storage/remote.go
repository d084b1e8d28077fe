package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spendbook/backend/internal/backup"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
	"github.com/spendbook/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserState is the remote record: one row per user holding the full
// snapshot and the time it was last written.
type UserState struct {
	UserID    string    `json:"userId" gorm:"primaryKey"`
	State     []byte    `json:"state"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RemoteStore persists one snapshot record per user with upsert semantics.
// All failures are logged and converted into safe defaults, they are never
// surfaced to the caller.
type RemoteStore struct {
	db    *gorm.DB
	clock state.Clock
}

// NewRemoteStore returns a RemoteStore backed by the given database.
func NewRemoteStore(db *gorm.DB, clock state.Clock) *RemoteStore {
	if clock == nil {
		clock = state.SystemClock{}
	}

	return &RemoteStore{db: db, clock: clock}
}

// Load returns the user's stored snapshot. Any failure, including a
// missing record, yields a freshly initialized snapshot.
func (rs *RemoteStore) Load(ctx context.Context, userID string) models.AppState {
	var record UserState
	err := rs.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Str("user", userID).Msg("loading remote state failed")
		}
		return rs.initial()
	}

	s, err := backup.Import(record.State)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("remote state is invalid")
		return rs.initial()
	}

	return s
}

// Save upserts the user's snapshot record. Best effort: failures are
// logged and swallowed.
func (rs *RemoteStore) Save(ctx context.Context, userID string, s models.AppState) {
	raw, err := json.Marshal(s)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("serializing remote state failed")
		return
	}

	record := UserState{
		UserID:    userID,
		State:     raw,
		UpdatedAt: rs.clock.Now(),
	}

	err = rs.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("saving remote state failed")
	}
}

func (rs *RemoteStore) initial() models.AppState {
	return models.Initial(types.MonthOf(rs.clock.Now()))
}
