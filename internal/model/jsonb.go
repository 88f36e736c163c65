package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The nested list fields (learn, requirements, faqs, curriculum) are stored as
// JSONB columns in the Postgres backend. These wrapper types implement
// driver.Valuer and sql.Scanner so sqlx can read and write them directly.

// StringList is a list of strings stored as a JSONB array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// FAQList is a list of FAQ entries stored as a JSONB array.
type FAQList []FAQ

// Value implements driver.Valuer.
func (l FAQList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *FAQList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// CurriculumList is a list of curriculum sections stored as a JSONB array.
type CurriculumList []CurriculumSection

// Value implements driver.Valuer.
func (l CurriculumList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *CurriculumList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dest interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSONB value", src)
	}
}
