package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ToUUID parses path params; returns uuid.Nil on bad input so callers
// can reject with a single check.
func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func ToString(v any) string {
	return fmt.Sprintf("%v", v)
}
