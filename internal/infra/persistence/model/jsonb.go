package model

import (
	"database/sql/driver"
	"encoding/json"

	"casefile/internal/errors"
)

// JSONB stores a schema-less key-value payload in a jsonb column.
// The core never inspects its contents; callers define the shape.
type JSONB map[string]any

// Value implements driver.Valuer.
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}

	bytes, err := json.Marshal(j)
	if err != nil {
		return nil, errors.Wrap(err, "marshal jsonb")
	}

	return bytes, nil
}

// Scan implements sql.Scanner.
func (j *JSONB) Scan(value any) error {
	if value == nil {
		*j = JSONB{}

		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}

	if len(raw) == 0 {
		*j = JSONB{}

		return nil
	}

	decoded := make(map[string]any)
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return errors.Wrap(err, "unmarshal jsonb")
	}
	*j = decoded

	return nil
}
