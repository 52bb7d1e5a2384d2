package estimate

import (
	"github.com/xuri/excelize/v2"
)

// styleSource styles new rows like the row above them. Columns whose
// neighbour is unstyled get a thin border, which also keeps blank
// measurement rows from being dropped when the workbook is written.
type styleSource struct {
	f      *excelize.File
	border int
}

func (s *styleSource) apply(sheet string, row, columns int) error {
	for c := 1; c <= columns; c++ {
		id := 0
		if row > 1 {
			above, err := excelize.CoordinatesToCellName(c, row-1)
			if err != nil {
				return err
			}
			if id, err = s.f.GetCellStyle(sheet, above); err != nil {
				return err
			}
		}
		if id == 0 {
			var err error
			if id, err = s.borderStyle(); err != nil {
				return err
			}
		}

		cell, err := excelize.CoordinatesToCellName(c, row)
		if err != nil {
			return err
		}
		if err := s.f.SetCellStyle(sheet, cell, cell, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *styleSource) borderStyle() (int, error) {
	if s.border != 0 {
		return s.border, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return 0, err
	}
	s.border = id
	return id, nil
}

// thinBorders returns a thin black border on all four sides.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}
