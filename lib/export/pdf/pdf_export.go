package pdfexport

import (
	"bytes"
	"fmt"

	"f1viz-backend/lib/utils/helpers"
	dbmodels "f1viz-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

type Provider interface {
	ExportLapList(title string, list []dbmodels.Lap) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

type lapColumn struct {
	header string
	width  float64
	value  func(dbmodels.Lap) string
}

var lapColumns = []lapColumn{
	{"Driver", 20, func(l dbmodels.Lap) string { return l.Driver }},
	{"Lap", 14, func(l dbmodels.Lap) string { return fmt.Sprintf("%d", l.LapNumber) }},
	{"Lap Time", 28, func(l dbmodels.Lap) string {
		if l.LapTimeMs == nil {
			return ""
		}
		return helpers.FormatLapTime(*l.LapTimeMs)
	}},
	{"Position", 22, func(l dbmodels.Lap) string { return fmt.Sprintf("%d", l.Position) }},
	{"Delta to Winner (s)", 40, func(l dbmodels.Lap) string {
		if l.DeltaWinner == nil {
			return ""
		}
		return fmt.Sprintf("%.3f", *l.DeltaWinner)
	}},
	{"Pit Stop", 20, func(l dbmodels.Lap) string {
		if l.PitStop {
			return "*"
		}
		return ""
	}},
	{"Stint", 14, func(l dbmodels.Lap) string { return fmt.Sprintf("%d", l.Stint) }},
	{"Compound", 28, func(l dbmodels.Lap) string { return l.Compound }},
	{"Track Status", 40, func(l dbmodels.Lap) string { return l.TrackStatusLabel() }},
}

const rowHeight = 7.0

func (i impl) ExportLapList(title string, list []dbmodels.Lap) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportLapList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	if title != "" {
		pdf.CellFormat(0, rowHeight+2, title, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	writePdfHeader(pdf)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range list {
		// repeat the column header after a page break
		if pdf.GetY()+rowHeight > 190 {
			pdf.AddPage()
			writePdfHeader(pdf)
			pdf.SetFont("Helvetica", "", 10)
		}
		for _, col := range lapColumns {
			pdf.CellFormat(col.width, rowHeight, col.value(item), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	buf = new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "failed to render lap table pdf")
	}
	return buf, nil
}

func writePdfHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range lapColumns {
		pdf.CellFormat(col.width, rowHeight, col.header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(rowHeight)
}
