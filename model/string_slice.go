package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringSlice stores a list of tags as a single comma-joined text
// column. Elements may not contain commas.
type StringSlice []string

// Value implements the driver.Valuer interface and defines how the
// slice is stored in the database.
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "", nil
	}

	for _, v := range s {
		if strings.Contains(v, ",") {
			return "", fmt.Errorf("tag %q contains a comma", v)
		}
	}

	return strings.Join(s, ","), nil
}

// Scan implements the sql.Scanner interface and converts the stored
// value back into a slice.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = []string{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		b, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan StringSlice, %v", value)
		}

		str = string(b)
	}

	if str == "" {
		*s = []string{}
	} else {
		*s = strings.Split(str, ",")
	}

	return nil
}
