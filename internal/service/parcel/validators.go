package parcel

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minWeightKg = 0.1
	maxWeightKg = 100
)

var dimensionsPattern = regexp.MustCompile(`^\d+x\d+x\d+$`)

func isValidWeight(weight float64) bool {
	return weight >= minWeightKg && weight <= maxWeightKg
}

// isValidDimensions accepts LxWxH with positive integer sides.
func isValidDimensions(dimensions string) bool {
	if !dimensionsPattern.MatchString(dimensions) {
		return false
	}

	for _, part := range strings.Split(dimensions, "x") {
		side, err := strconv.Atoi(part)
		if err != nil || side <= 0 {
			return false
		}
	}
	return true
}
