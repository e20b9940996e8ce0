package export

import (
	"fmt"
	"io"
	"math"
	"placemap/internal/domain"
	"placemap/internal/geo"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Lugares"

var headers = []any{
	"Nombre", "Dirección", "Estado", "Calificación", "Comentarios",
	"Lat", "Lng", "Distancia al promedio (m)",
}

// WriteXLSX writes places as a single-sheet workbook. When center is non-nil
// each row also carries its rounded distance to it.
func WriteXLSX(w io.Writer, places []domain.Place, center *domain.Coordinates) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SheetName); err != nil {
		return fmt.Errorf("write xlsx: new sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("write xlsx: stream writer: %w", err)
	}

	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("write xlsx: header: %w", err)
	}

	for i, p := range places {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write xlsx: cell name: %w", err)
		}

		row := []any{
			p.DisplayName, p.FormattedAddress, p.BusinessStatus,
			optional(p.Rating), optional(p.ReviewCount),
			p.Location.Lat, p.Location.Lng, nil,
		}
		if center != nil && p.Location.Valid() {
			row[7] = int(math.Round(geo.Distance(*center, p.Location)))
		}

		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write xlsx: row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("write xlsx: flush: %w", err)
	}

	f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(SheetName); err == nil {
		f.SetActiveSheet(index)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}

func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
