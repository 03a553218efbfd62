package xlsexport

import (
	"testing"

	dbmodels "f1viz-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportLapList(t *testing.T) {
	NewHandler()

	t.Run(`lap table export check`, func(t *testing.T) {
		ms := int64(90500)
		delta := 1.5
		list := []dbmodels.Lap{
			{
				Driver:      "VER",
				LapNumber:   1,
				LapTimeMs:   &ms,
				Position:    1,
				DeltaWinner: &delta,
				PitStop:     true,
				Stint:       1,
				Compound:    "SOFT",
				Yellow:      true,
				Safety:      true,
			},
			{
				Driver:    "PER",
				LapNumber: 1,
				Position:  2,
				Stint:     1,
				Compound:  "MEDIUM",
				Nominal:   true,
			},
		}
		buf, err := Instance.ExportLapList(list)
		require.Nil(t, err)
		require.NotNil(t, buf)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Laps")
		require.Nil(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, lapHeaders, rows[0])

		require.Equal(t, "VER", rows[1][0])
		require.Equal(t, "1", rows[1][1])
		require.Equal(t, "1:30.500", rows[1][2])
		require.Equal(t, "1.500", rows[1][4])
		require.Equal(t, "*", rows[1][5])
		require.Equal(t, "SOFT", rows[1][7])
		require.Equal(t, "Yellow, Safety", rows[1][8])

		require.Equal(t, "PER", rows[2][0])
	})

	t.Run(`empty list export check`, func(t *testing.T) {
		buf, err := Instance.ExportLapList(nil)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Laps")
		require.Nil(t, err)
		require.Len(t, rows, 1)
	})
}
