package parser

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"go.uber.org/zap"
)

// SheetRows is the raw content of one sheet, row 0 being the header.
type SheetRows struct {
	Name string
	Rows []models.RawRow
}

// ScheduleOptions configures ParseSchedule.
type ScheduleOptions struct {
	// NewID returns a unique item id. Defaults to a random UUID.
	NewID func() string
	// NewCode returns a synthetic code for rows without one.
	NewCode func() string
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (o ScheduleOptions) withDefaults() ScheduleOptions {
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.NewCode == nil {
		o.NewCode = SyntheticCode
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// SyntheticCode returns a process-unique code built from the current time and
// a random suffix. Such codes are not stable across parses.
func SyntheticCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("GEN-%d-%s", time.Now().UnixMilli(), suffix)
}

// ParseSchedule builds flat and hierarchical item lists from a workbook's sheets.
//
// The hierarchical pass runs first. When no row carries a level signal above
// 0 the workbook is treated as a plain table and re-parsed with the strict flat
// pass, which keeps only rows carrying code, description, unit and a numeric rate.
func ParseSchedule(sheets []SheetRows, opts ScheduleOptions) (*models.ParseResult, error) {
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	opts = opts.withDefaults()

	result := parseHierarchical(sheets, opts)
	if !result.Metadata.HasHierarchy {
		opts.Logger.Debug("no hierarchy detected, using flat pass",
			zap.Int("hierarchical_items", result.Metadata.TotalItems))
		result = parseFlat(sheets, opts)
	}

	if result.Metadata.TotalItems == 0 {
		return nil, ErrNoValidRows
	}

	opts.Logger.Debug("schedule parsed",
		zap.Int("items", result.Metadata.TotalItems),
		zap.String("mode", string(result.Metadata.Mode)),
		zap.Int("max_level", result.Metadata.MaxLevel))
	return result, nil
}

func parseHierarchical(sheets []SheetRows, opts ScheduleOptions) *models.ParseResult {
	acc := newCollector(models.ParseModeHierarchical)
	var stack FrameStack

	for _, sheet := range sheets {
		stack.Reset()
		acc.startSheet(sheet.Name)

		for rowIdx := 1; rowIdx < len(sheet.Rows); rowIdx++ {
			c := Classify(sheet.Rows[rowIdx])
			if c.Skip() {
				continue
			}

			code := c.Code
			if code == "" {
				code = opts.NewCode()
			}

			if c.Level > 0 {
				acc.nested = true
			}
			level, hierarchy := stack.Update(c.Level, c.Description, code)
			item := models.HierarchicalCatalogItem{
				CatalogItem: models.CatalogItem{
					ID:          opts.NewID(),
					Code:        code,
					Description: c.Description,
					Unit:        c.Unit,
					Rate:        c.RateString(),
					Category:    ResolveCategory(c.Category, sheet.Name),
				},
				Level:           level,
				FullDescription: strings.Join(hierarchy, models.HierarchySeparator),
				Hierarchy:       hierarchy,
				IndentLevel:     c.IndentLevel,
				SheetName:       sheet.Name,
				Row:             rowIdx + 1,
			}
			if parent, ok := stack.Parent(); ok {
				item.ParentCode = parent.Code
			}
			acc.add(item)
		}
	}

	return acc.result()
}

func parseFlat(sheets []SheetRows, opts ScheduleOptions) *models.ParseResult {
	acc := newCollector(models.ParseModeFlat)

	for _, sheet := range sheets {
		acc.startSheet(sheet.Name)

		for rowIdx := 1; rowIdx < len(sheet.Rows); rowIdx++ {
			c := Classify(sheet.Rows[rowIdx])
			if c.Code == "" || c.Description == "" || c.Unit == "" || !c.Rate.Valid {
				continue
			}

			acc.add(models.HierarchicalCatalogItem{
				CatalogItem: models.CatalogItem{
					ID:          opts.NewID(),
					Code:        c.Code,
					Description: c.Description,
					Unit:        c.Unit,
					Rate:        c.RateString(),
					Category:    ResolveCategory(c.Category, sheet.Name),
				},
				Level:           0,
				FullDescription: c.Description,
				Hierarchy:       []string{c.Description},
				IndentLevel:     c.IndentLevel,
				SheetName:       sheet.Name,
				Row:             rowIdx + 1,
			})
		}
	}

	return acc.result()
}

// collector accumulates items and running metadata for one pass.
type collector struct {
	items        []models.CatalogItem
	hierarchical []models.HierarchicalCatalogItem
	categories   map[string]struct{}
	perSheet     map[string]int
	maxLevel     int
	// nested is set when a row signalled a level above 0, even if the
	// level was normalized down for lack of ancestors.
	nested bool
	mode   models.ParseMode
}

func newCollector(mode models.ParseMode) *collector {
	return &collector{
		items:        []models.CatalogItem{},
		hierarchical: []models.HierarchicalCatalogItem{},
		categories:   make(map[string]struct{}),
		perSheet:     make(map[string]int),
		mode:         mode,
	}
}

func (c *collector) startSheet(name string) {
	if _, ok := c.perSheet[name]; !ok {
		c.perSheet[name] = 0
	}
}

func (c *collector) add(item models.HierarchicalCatalogItem) {
	c.items = append(c.items, item.CatalogItem)
	c.hierarchical = append(c.hierarchical, item)
	c.categories[item.Category] = struct{}{}
	c.perSheet[item.SheetName]++
	if item.Level > c.maxLevel {
		c.maxLevel = item.Level
	}
}

func (c *collector) result() *models.ParseResult {
	categories := make([]string, 0, len(c.categories))
	for cat := range c.categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	return &models.ParseResult{
		Items:             c.items,
		HierarchicalItems: c.hierarchical,
		Metadata: models.ParseMetadata{
			TotalItems:         len(c.items),
			Categories:         categories,
			PerSheetItemCounts: c.perSheet,
			HasHierarchy:       c.nested || c.maxLevel > 0,
			MaxLevel:           c.maxLevel,
			Mode:               c.mode,
		},
	}
}
