package plan

import (
	"strconv"
	"strings"
)

const defaultClimate = "Temperate"

// Region is the climate and season derived from a US zip code.
type Region struct {
	Climate string
	Season  string
}

type zipBand struct {
	low, high int
	climate   string
}

var zipBands = []zipBand{
	{100, 199, "Temperate"},     // Northeast
	{200, 399, "Subtropical"},   // Southeast
	{400, 599, "Continental"},   // Midwest
	{600, 799, "Arid"},          // Southwest
	{800, 999, "Mediterranean"}, // West
}

// ResolveRegion maps the first three digits of zip to a climate band.
// Season is always "Spring": there is no calendar or weather lookup yet.
func ResolveRegion(zip string) Region {
	region := Region{Climate: defaultClimate, Season: "Spring"}

	prefix := zip
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return region
	}

	for _, b := range zipBands {
		if n >= b.low && n <= b.high {
			region.Climate = b.climate
			break
		}
	}
	return region
}
