package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_WritesHeaderAndRows(t *testing.T) {
	data, err := XLSX(Sheet{
		Name:    "Attendance",
		Headers: []string{"Employee ID", "Date", "Check In"},
		Rows: [][]interface{}{
			{"EMP010", "2026-10-19", "09:02:13 AM"},
			{"EMP011", "2026-10-19", ""},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Employee ID", "Date", "Check In"}, rows[0])
	assert.Equal(t, []string{"EMP010", "2026-10-19", "09:02:13 AM"}, rows[1])
	assert.Equal(t, "EMP011", rows[2][0])
}

func TestXLSX_DefaultSheetName(t *testing.T) {
	data, err := XLSX(Sheet{Headers: []string{"A"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}
