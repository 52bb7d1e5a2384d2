package parser

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
)

var (
	costSheetPattern        = regexp.MustCompile(`(?i)abstract\s+of\s+cost.*?part[-\s]*(\d+)`)
	measurementSheetPattern = regexp.MustCompile(`(?i)measurement.*?part[-\s]*(\d+)`)
)

// sheetPart is a sheet name with the part number extracted from it.
type sheetPart struct {
	name string
	part int
}

// LocatePairs matches every cost-abstract sheet with the first measurement
// sheet carrying the same part number. Cost sheets without a partner are
// dropped; see UnmatchedCostSheets. Pairs are ordered by part number, then by
// sheet order.
func LocatePairs(sheetNames []string) []models.SheetPair {
	costs, measurements := splitSheets(sheetNames)

	var pairs []models.SheetPair
	for _, cost := range costs {
		for _, m := range measurements {
			if m.part == cost.part {
				pairs = append(pairs, models.SheetPair{
					PartNumber:           cost.part,
					CostSheetName:        cost.name,
					MeasurementSheetName: m.name,
				})
				break
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].PartNumber < pairs[j].PartNumber
	})
	return pairs
}

// UnmatchedCostSheets returns cost-abstract sheets that have no measurement
// sheet with the same part number.
func UnmatchedCostSheets(sheetNames []string) []string {
	costs, measurements := splitSheets(sheetNames)

	var unmatched []string
	for _, cost := range costs {
		found := false
		for _, m := range measurements {
			if m.part == cost.part {
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, cost.name)
		}
	}
	return unmatched
}

// FindPair returns the first pair for a part number.
func FindPair(pairs []models.SheetPair, part int) (models.SheetPair, bool) {
	for _, p := range pairs {
		if p.PartNumber == part {
			return p, true
		}
	}
	return models.SheetPair{}, false
}

// splitSheets sorts sheet names into cost and measurement candidates.
// A name that reads as a cost sheet is never a measurement candidate.
func splitSheets(sheetNames []string) (costs, measurements []sheetPart) {
	for _, name := range sheetNames {
		if part, ok := matchPart(costSheetPattern, name); ok {
			costs = append(costs, sheetPart{name: name, part: part})
			continue
		}
		if part, ok := matchPart(measurementSheetPattern, name); ok {
			measurements = append(measurements, sheetPart{name: name, part: part})
		}
	}
	return costs, measurements
}

func matchPart(re *regexp.Regexp, name string) (int, bool) {
	m := re.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	part, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return part, true
}
