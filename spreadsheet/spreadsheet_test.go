package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteSheetThenReadRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSheet(&buf, "Hardware",
		[]string{"Court Name", "Serial Number"},
		[][]string{{"Nashik", "SN-1"}, {"Manmad", ""}})
	require.NoError(t, err)

	rows, err := ReadRows(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{"Court Name": "Nashik", "Serial Number": "SN-1"}, rows[0])
	assert.Equal(t, "Manmad", rows[1]["Court Name"])
	assert.Equal(t, "", rows[1]["Serial Number"])
}

func TestReadRowsKeepsRawDateSerials(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Delivery Date"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 45292))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rows, err := ReadRows(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "45292", rows[0]["Delivery Date"])
}

func TestReadRowsEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rows, err := ReadRows(&buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRowsRejectsGarbage(t *testing.T) {
	_, err := ReadRows(bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}
