package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spendbook/backend/internal/backup"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
	"github.com/spendbook/backend/internal/types"
)

// localStateFile is the fixed storage key for the local snapshot,
// version-tagged like the state schema.
const localStateFile = "expense-tracker-v1.json"

// LocalStore persists the snapshot to a JSON file in the data directory.
// It is the no-login/offline store and is written after every dispatch.
type LocalStore struct {
	path  string
	clock state.Clock
}

// NewLocalStore creates the data directory if needed and returns the
// store for it.
func NewLocalStore(dataDir string, clock state.Clock) (*LocalStore, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = state.SystemClock{}
	}

	return &LocalStore{
		path:  filepath.Join(dataDir, localStateFile),
		clock: clock,
	}, nil
}

// Load reads the stored snapshot. An absent, unparsable or shape-invalid
// file is never an error: it means "no prior state" and yields a freshly
// initialized snapshot for the current month.
func (ls *LocalStore) Load() models.AppState {
	raw, err := os.ReadFile(ls.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", ls.path).Msg("reading local state failed, starting fresh")
		}
		return ls.initial()
	}

	s, err := backup.Import(raw)
	if err != nil {
		log.Warn().Err(err).Str("path", ls.path).Msg("local state is invalid, starting fresh")
		return ls.initial()
	}

	return s
}

// Save writes the snapshot. The write is atomic: a temp file is written
// and renamed over the previous state.
func (ls *LocalStore) Save(s models.AppState) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	tmp := ls.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, ls.path)
}

func (ls *LocalStore) initial() models.AppState {
	return models.Initial(types.MonthOf(ls.clock.Now()))
}
