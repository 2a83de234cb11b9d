package catalog

// MaterialItem is one priced material inside a tier.
type MaterialItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Unit      string  `json:"unit"`
}

type MaterialTier struct {
	Hardscape MaterialItem `json:"hardscape"`
	Softscape MaterialItem `json:"softscape"`
	Lighting  MaterialItem `json:"lighting"`
}

type LaborRate struct {
	HourlyRate  float64 `json:"rate"`
	DisplayType string  `json:"type"`
}

type CurrencyRate struct {
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

type SoilAdvice struct {
	Advice    string `json:"advice"`
	Amendment string `json:"amendment"`
}

type Maintenance struct {
	Watering    string `json:"watering" yaml:"watering"`
	Pruning     string `json:"pruning" yaml:"pruning"`
	Fertilizing string `json:"fertilizing" yaml:"fertilizing"`
}

type Plant struct {
	Name        string      `json:"name" yaml:"name"`
	Season      string      `json:"season" yaml:"season"`
	SoilTypes   []string    `json:"soil_types" yaml:"soil_types"`
	Maintenance Maintenance `json:"maintenance" yaml:"maintenance"`
}

// GrowsIn reports whether soil is one of the plant's soil types.
func (p Plant) GrowsIn(soil string) bool {
	for _, s := range p.SoilTypes {
		if s == soil {
			return true
		}
	}
	return false
}
