package utils

import "encoding/json"

// MustMarshal swallows the marshal error; only pass values that cannot
// fail (plain structs with no custom marshalers).
func MustMarshal(v any) []byte {
	m, _ := json.Marshal(v)
	return m
}
