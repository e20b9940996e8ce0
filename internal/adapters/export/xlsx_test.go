package export

import (
	"bytes"
	"placemap/internal/domain"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	rating := 4.5
	reviews := 80
	places := []domain.Place{
		{
			DisplayName:      "Tacos El Güero",
			FormattedAddress: "Av. Juárez 100",
			BusinessStatus:   domain.BusinessStatusOperational,
			Rating:           &rating,
			ReviewCount:      &reviews,
			Location:         domain.Coordinates{Lat: 30.38, Lng: -107.88},
		},
		{
			DisplayName: "Sin calificación",
			Location:    domain.Coordinates{Lat: 30.39, Lng: -107.89},
		},
	}
	center := domain.Coordinates{Lat: 30.38, Lng: -107.88}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, places, &center); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Nombre" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Tacos El Güero" || rows[1][3] != "4.5" || rows[1][4] != "80" || rows[1][7] != "0" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "Sin calificación" || rows[2][3] != "" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}

	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		t.Fatalf("default sheet should be removed")
	}
}
