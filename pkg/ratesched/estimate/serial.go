package estimate

import (
	"math"
	"strconv"
	"strings"
)

// NextSerial scans column A of a cost grid and returns one more than the
// largest numeric value found, or 1 when there is none. Values too large to be
// serial numbers are ignored.
func NextSerial(grid [][]string) int {
	highest := 0.0
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil || math.IsNaN(v) || v >= math.MaxInt32 {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return int(math.Floor(highest)) + 1
}
