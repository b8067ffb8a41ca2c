package utils

import (
	"strconv"
)

// StringToInt64 converts a route parameter to int64, returns 0 if error.
// Comment ids are never 0, so a bad parameter falls through to the store's
// tolerated "unknown id" path.
func StringToInt64(s string) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return i
}
