package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Amenities is a JSONB column holding a list of labels. Older rows store the
// list as a JSON string that itself encodes the array, so Scan accepts both.
type Amenities []string

// Scan implements sql.Scanner.
func (a *Amenities) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*a = Amenities{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrInvalidAmenities, src)
	}

	parsed, err := ParseAmenities(raw)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// Value implements driver.Valuer.
func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}

	raw, err := json.Marshal([]string(a))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amenities: %w", err)
	}

	return raw, nil
}

// ParseAmenities decodes a JSON array of strings, a JSON string wrapping such
// an array, or null. Anything else is ErrInvalidAmenities.
func ParseAmenities(raw []byte) (Amenities, error) {
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Amenities{}, nil
	}

	switch raw[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAmenities, err)
		}

		return Amenities(list), nil
	case '"':
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAmenities, err)
		}

		if inner = string(bytes.TrimSpace([]byte(inner))); len(inner) == 0 || inner[0] != '[' {
			return nil, fmt.Errorf("%w: string does not hold a list", ErrInvalidAmenities)
		}

		return ParseAmenities([]byte(inner))
	default:
		return nil, fmt.Errorf("%w: unexpected JSON %q", ErrInvalidAmenities, raw[0])
	}
}
