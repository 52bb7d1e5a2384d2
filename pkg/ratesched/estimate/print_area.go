package estimate

import (
	"github.com/ukaji3/ratesched-go/pkg/ratesched/parser"
	"github.com/xuri/excelize/v2"
)

// extendPrintArea grows a sheet's print area to newLast when it previously
// ended on oldLast, the sheet's last row before rows were appended.
func extendPrintArea(f *excelize.File, sheet string, oldLast, newLast int) error {
	area, dn, ok := parser.SheetPrintArea(f, sheet)
	if !ok || area.R2 != oldLast || newLast <= oldLast {
		return nil
	}
	area.R2 = newLast
	return parser.ReplacePrintArea(f, dn, area)
}
