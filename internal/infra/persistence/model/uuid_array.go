package model

import (
	"database/sql/driver"
	"strings"

	"tasbal/internal/errors"

	"github.com/google/uuid"
)

// UUIDArray scans a PostgreSQL uuid[] column returned by the task routines.
// UUIDs never contain braces, quotes or commas, so the array literal can be
// split directly.
type UUIDArray []uuid.UUID

// Scan implements sql.Scanner.
func (a *UUIDArray) Scan(src any) error {
	var literal string
	switch v := src.(type) {
	case nil:
		*a = nil

		return nil
	case string:
		literal = v
	case []byte:
		literal = string(v)
	default:
		return errors.Errorf("cannot scan %T into UUIDArray", src)
	}

	literal = strings.TrimPrefix(literal, "{")
	literal = strings.TrimSuffix(literal, "}")
	if literal == "" {
		*a = UUIDArray{}

		return nil
	}

	parts := strings.Split(literal, ",")
	out := make(UUIDArray, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return errors.Wrap(err, "invalid uuid in array literal")
		}
		out = append(out, id)
	}
	*a = out

	return nil
}

// Value implements driver.Valuer.
func (a UUIDArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}

	parts := make([]string, len(a))
	for i, id := range a {
		parts[i] = id.String()
	}

	return "{" + strings.Join(parts, ",") + "}", nil
}
