package store

import (
	"encoding/json"
	"fmt"
)

// encodeJSON serialises one of the slice-valued entity attributes for
// storage in a TEXT column. A nil slice is stored as the empty JSON array so
// round-trips stay symmetric.
func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json column: %w", err)
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// decodeJSON deserialises a TEXT column back into dst. Empty input decodes
// to the zero value.
func decodeJSON(src string, dst any) error {
	if src == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(src), dst); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
