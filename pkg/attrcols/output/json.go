package output

import (
	"encoding/json"

	"github.com/ukaji3/attrcols-go/pkg/attrcols/models"
)

// ToJSON serializes a conversion result.
func ToJSON(result *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
