package pdfexport

import (
	"testing"

	dbmodels "f1viz-backend/models/db"

	"github.com/stretchr/testify/require"
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
		buf, err := Instance.ExportLapList("2023 Monaco Grand Prix - Race", list)
		require.Nil(t, err)
		require.NotNil(t, buf)
		require.Equal(t, "%PDF", buf.String()[:4])
	})

	t.Run(`multi page export check`, func(t *testing.T) {
		list := make([]dbmodels.Lap, 60)
		for idx := range list {
			list[idx] = dbmodels.Lap{Driver: "VER", LapNumber: idx + 1, Position: 1, Stint: 1, Compound: "SOFT", Nominal: true}
		}
		buf, err := Instance.ExportLapList("", list)
		require.Nil(t, err)
		require.NotNil(t, buf)
		require.Equal(t, "%PDF", buf.String()[:4])
	})

	t.Run(`empty list export check`, func(t *testing.T) {
		buf, err := Instance.ExportLapList("", nil)
		require.Nil(t, err)
		require.NotNil(t, buf)
		require.Equal(t, "%PDF", buf.String()[:4])
	})
}
