package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// nextSequentialID scans ids carrying the given prefix for the highest
// numeric suffix and returns the next one, zero padded to three digits.
// An empty set yields <prefix>001.
func nextSequentialID(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		suffix, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}
