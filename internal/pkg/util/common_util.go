package util

import (
	"fmt"
	"strconv"
)

// StrSliceToUint64Slice mengonversi slice string menjadi uint64.
func StrSliceToUint64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
