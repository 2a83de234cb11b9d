package catalog

const (
	DefaultTier     = "Standard"
	DefaultCurrency = "USD"
	DefaultSoil     = "Loam"
	GeneralLabor    = "General"
)

// Reference bundles the static pricing tables and the plant catalog.
// It is built once at startup and shared read-only.
type Reference struct {
	Tiers      map[string]MaterialTier
	Labor      map[string]LaborRate
	Currencies map[string]CurrencyRate
	Soils      map[string]SoilAdvice
	Plants     []Plant
}

// NewReference returns the standard tables paired with plants.
func NewReference(plants []Plant) *Reference {
	return &Reference{
		Tiers: map[string]MaterialTier{
			"Economy": {
				Hardscape: MaterialItem{Name: "Concrete Pavers", UnitPrice: 8.0, Unit: "sqft"},
				Softscape: MaterialItem{Name: "Standard Mulch", UnitPrice: 3.5, Unit: "bag"},
				Lighting:  MaterialItem{Name: "Solar Path Stakes", UnitPrice: 8.0, Unit: "each"},
			},
			"Standard": {
				Hardscape: MaterialItem{Name: "Limestone Pavers", UnitPrice: 15.0, Unit: "sqft"},
				Softscape: MaterialItem{Name: "Hardwood Mulch", UnitPrice: 5.0, Unit: "bag"},
				Lighting:  MaterialItem{Name: "LED Low Voltage", UnitPrice: 25.0, Unit: "each"},
			},
			"Premium": {
				Hardscape: MaterialItem{Name: "Imported Granite", UnitPrice: 28.0, Unit: "sqft"},
				Softscape: MaterialItem{Name: "River Rock", UnitPrice: 12.0, Unit: "bag"},
				Lighting:  MaterialItem{Name: "Smart App System", UnitPrice: 60.0, Unit: "each"},
			},
		},
		Labor: map[string]LaborRate{
			"General":    {HourlyRate: 40.0, DisplayType: "General Labor"},
			"Specialist": {HourlyRate: 85.0, DisplayType: "Masonry/Technical"},
		},
		Currencies: map[string]CurrencyRate{
			"USD": {Symbol: "$", Rate: 1.0},
			"EUR": {Symbol: "€", Rate: 0.92},
			"INR": {Symbol: "₹", Rate: 83.0},
		},
		Soils: map[string]SoilAdvice{
			"Clay":  {Advice: "Clay retains moisture. We selected deep-rooting plants to break compaction.", Amendment: "Gypsum"},
			"Sandy": {Advice: "Sandy soil drains fast. We selected drought-resistant species.", Amendment: "Peat Moss"},
			"Loam":  {Advice: "Loam is ideal. Supports a lush, dense garden layout.", Amendment: "Compost"},
		},
		Plants: plants,
	}
}

// Tier returns the named tier, or Standard when the name is unknown.
func (r *Reference) Tier(name string) MaterialTier {
	if t, ok := r.Tiers[name]; ok {
		return t
	}
	return r.Tiers[DefaultTier]
}

// Currency returns the rate for code, or USD when the code is unknown.
func (r *Reference) Currency(code string) CurrencyRate {
	if c, ok := r.Currencies[code]; ok {
		return c
	}
	return r.Currencies[DefaultCurrency]
}

// Soil returns advice for soil, or the Loam entry when soil is unknown.
func (r *Reference) Soil(soil string) SoilAdvice {
	if a, ok := r.Soils[soil]; ok {
		return a
	}
	return r.Soils[DefaultSoil]
}

func (r *Reference) LaborRate(class string) LaborRate {
	if l, ok := r.Labor[class]; ok {
		return l
	}
	return r.Labor[GeneralLabor]
}
