// Package treatment ships the static household treatment technology guide.
// The table is embedded at build time so the reference endpoint never needs a
// database or network round trip.
package treatment

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed treatments.yaml
var catalogYAML []byte

// Technology is one row of the treatment guide.
type Technology struct {
	Contaminant string `yaml:"contaminant" json:"contaminant"`
	Primary     string `yaml:"primary" json:"primary"`
	Alternative string `yaml:"alternative" json:"alternative"`
	Cost        string `yaml:"cost" json:"cost"`
}

var catalog []Technology

func init() {
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		panic(fmt.Sprintf("treatment: embedded catalog malformed: %v", err))
	}
	if len(catalog) == 0 {
		panic("treatment: embedded catalog empty")
	}
}

// Catalog returns the full guide in its published order.
func Catalog() []Technology {
	out := make([]Technology, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds the row for a contaminant class, matching case-insensitively.
func Lookup(contaminant string) (Technology, bool) {
	for _, tech := range catalog {
		if strings.EqualFold(tech.Contaminant, contaminant) {
			return tech, true
		}
	}
	return Technology{}, false
}
