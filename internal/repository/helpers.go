package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

const dateLayout = domain.DateLayout

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// marshalPreferences encodes work day preferences as the JSON column value.
func marshalPreferences(p domain.WorkDayPreferences) (string, error) {
	if p == nil {
		p = domain.WorkDayPreferences{}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding work day preferences: %w", err)
	}
	return string(raw), nil
}

func unmarshalPreferences(raw string) (domain.WorkDayPreferences, error) {
	if raw == "" {
		return domain.WorkDayPreferences{}, nil
	}
	var p domain.WorkDayPreferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decoding work day preferences: %w", err)
	}
	return p, nil
}

// marshalTaskIDs encodes a completed-task id list as the JSON column value.
func marshalTaskIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding task ids: %w", err)
	}
	return string(raw), nil
}

func unmarshalTaskIDs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decoding task ids: %w", err)
	}
	return ids, nil
}
