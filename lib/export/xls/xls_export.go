package xlsexport

import (
	"bytes"
	"fmt"

	"f1viz-backend/lib/utils/helpers"
	dbmodels "f1viz-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportLapList(list []dbmodels.Lap) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var lapHeaders = []string{"Driver", "Lap", "Lap Time", "Position", "Delta to Winner (s)", "Pit Stop", "Stint", "Compound", "Track Status"}

func (i impl) ExportLapList(list []dbmodels.Lap) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, lapHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeLapData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx lap table")
		}
	}
	f.SetSheetName(sheet, "Laps")
	return f.WriteToBuffer()
}

func writeLapData(f *excelize.File, sheet string, list []dbmodels.Lap, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(lapHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Driver"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Driver); err != nil {
			return row, err
		}

		// "Lap"
		col++
		if err := writeColumn(f, sheet, col, row, item.LapNumber); err != nil {
			return row, err
		}

		// "Lap Time"
		col++
		if item.LapTimeMs != nil {
			if err := writeColumn(f, sheet, col, row, helpers.FormatLapTime(*item.LapTimeMs)); err != nil {
				return row, err
			}
		}

		// "Position"
		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		// "Delta to Winner (s)"
		col++
		if item.DeltaWinner != nil {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.3f", *item.DeltaWinner)); err != nil {
				return row, err
			}
		}

		// "Pit Stop"
		col++
		if item.PitStop {
			if err := writeColumn(f, sheet, col, row, "*"); err != nil {
				return row, err
			}
		}

		// "Stint"
		col++
		if err := writeColumn(f, sheet, col, row, item.Stint); err != nil {
			return row, err
		}

		// "Compound"
		col++
		if err := writeColumn(f, sheet, col, row, item.Compound); err != nil {
			return row, err
		}

		// "Track Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.TrackStatusLabel()); err != nil {
			return row, err
		}
	}
	return row, nil
}
