package id

import (
	"fmt"
	"strconv"
)

// Next returns the next available record id given the ids already in use.
// Ids start at 1 and are allocated as max+1; gaps from deletions are not
// reused.
func Next(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Parse converts a user-supplied id argument into a record id.
func Parse(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid id %d: must be positive", n)
	}
	return n, nil
}
