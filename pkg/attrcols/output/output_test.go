package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

var testGrid = models.Grid{
	{"Order", "Additional Details", "utm_source", "gclid"},
	{"1", "utm_source: google\ngclid: x", "google", "x"},
	{"2", "", "NA", "NA"},
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders-updated.xlsx")
	require.NoError(t, WriteXLSX(testGrid, "Orders", path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Orders"}, f.GetSheetList())

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Order", "Additional Details", "utm_source", "gclid"},
		{"1", "utm_source: google\ngclid: x", "google", "x"},
		{"2", "", "NA", "NA"},
	}, rows)

	found := false
	for _, dn := range f.GetDefinedName() {
		if strings.Contains(dn.RefersTo, "$A$1:$D$3") {
			found = true
		}
	}
	assert.True(t, found, "autofilter defined name missing")
}

func TestToXLSXEmptyGrid(t *testing.T) {
	f, err := ToXLSX(nil, "Orders")
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testGrid))

	expected := "Order,Additional Details,utm_source,gclid\n" +
		"1,\"utm_source: google\ngclid: x\",google,x\n" +
		"2,,NA,NA\n"
	assert.Equal(t, expected, buf.String())
}

func TestToJSON(t *testing.T) {
	result := &models.Result{
		BookName: "orders.csv",
		Grid:     testGrid,
		Summary: models.Summary{
			Rows:    2,
			Columns: 4,
			Filled:  map[string]int{"utm_source": 1, "gclid": 1},
		},
	}

	compact, err := ToJSON(result, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n  ")

	pretty, err := ToJSON(result, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\": \"orders.csv\"")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(compact, &decoded))
	assert.NotContains(t, decoded, "sheet_name")
	assert.Equal(t, float64(2), decoded["summary"].(map[string]interface{})["rows"])
}
