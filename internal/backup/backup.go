// Package backup serializes the whole snapshot to and from a portable
// JSON document.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spendbook/backend/internal/models"
)

// ErrInvalidBackup is returned when a document does not have the expected
// snapshot shape.
var ErrInvalidBackup = errors.New("backup does not contain a valid state snapshot")

// Export serializes a snapshot as pretty-printed JSON.
func Export(s models.AppState) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Import parses a backup document and returns the snapshot it contains.
//
// Validation is shallow and mirrors the reducer's trust model: the schema
// version must match, months and savings must be present and object-typed.
// Entities are not deep-validated.
func Import(data []byte) (models.AppState, error) {
	var probe struct {
		SchemaVersion int             `json:"schemaVersion"`
		Months        json.RawMessage `json:"months"`
		Savings       json.RawMessage `json:"savings"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return models.AppState{}, fmt.Errorf("%w: %s", ErrInvalidBackup, err)
	}

	if probe.SchemaVersion != models.SchemaVersion || !isObject(probe.Months) || !isObject(probe.Savings) {
		return models.AppState{}, ErrInvalidBackup
	}

	var s models.AppState
	if err := json.Unmarshal(data, &s); err != nil {
		return models.AppState{}, fmt.Errorf("%w: %s", ErrInvalidBackup, err)
	}

	s.Normalize()
	return s, nil
}

// Filename returns the download file name for a backup taken now.
func Filename(now time.Time) string {
	return fmt.Sprintf("expense-tracker-backup-%s.json", now.Format("2006-01-02"))
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
