package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

// WriteCSV writes the grid as comma separated values.
func WriteCSV(w io.Writer, grid models.Grid) error {
	cw := csv.NewWriter(w)
	for _, row := range grid {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
