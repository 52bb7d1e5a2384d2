package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
)

func TestLocatePairs(t *testing.T) {
	names := []string{
		"Cover",
		"MEASUREMENT - PART-2",
		"ABSTRACT OF COST - PART-1",
		"Abstract  of Cost Part 2",
		"MEASUREMENT - PART-1",
		"ABSTRACT OF COST - PART-3",
	}

	pairs := LocatePairs(names)

	assert.Equal(t, []models.SheetPair{
		{PartNumber: 1, CostSheetName: "ABSTRACT OF COST - PART-1", MeasurementSheetName: "MEASUREMENT - PART-1"},
		{PartNumber: 2, CostSheetName: "Abstract  of Cost Part 2", MeasurementSheetName: "MEASUREMENT - PART-2"},
	}, pairs)
	assert.Equal(t, []string{"ABSTRACT OF COST - PART-3"}, UnmatchedCostSheets(names))
}

func TestLocatePairsSingleEstimatePart(t *testing.T) {
	pairs := LocatePairs([]string{"ABSTRACT OF COST - PART-1", "MEASUREMENT - PART-1"})

	assert.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].PartNumber)
}

func TestLocatePairsRequiresSamePart(t *testing.T) {
	names := []string{"abstract of cost part-3", "measurement part-30", "measurement sheet"}

	assert.Empty(t, LocatePairs(names))
	assert.Equal(t, []string{"abstract of cost part-3"}, UnmatchedCostSheets(names))
}

func TestMatchPart(t *testing.T) {
	tests := []struct {
		name string
		part int
		ok   bool
	}{
		{"ABSTRACT OF COST - PART-1", 1, true},
		{"abstract of cost (civil) part 12", 12, true},
		{"ABSTRACT OF COST PART--4", 4, true},
		{"ABSTRACT OF COST", 0, false},
		{"COST ABSTRACT PART 1", 0, false},
		{"MEASUREMENT - PART-1", 0, false},
	}

	for _, tt := range tests {
		part, ok := matchPart(costSheetPattern, tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.part, part, tt.name)
	}
}

func TestFindPair(t *testing.T) {
	pairs := []models.SheetPair{{PartNumber: 1}, {PartNumber: 2, CostSheetName: "c2"}}

	p, ok := FindPair(pairs, 2)
	assert.True(t, ok)
	assert.Equal(t, "c2", p.CostSheetName)

	_, ok = FindPair(pairs, 3)
	assert.False(t, ok)
}
