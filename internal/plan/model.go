package plan

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Gk2403-techi/greenscape/internal/catalog"
)

const (
	DefaultDimensions = 1000
	DefaultBudget     = 100000

	DefaultPersona     = "Homeowner"
	DefaultWater       = "None"
	DefaultZip         = "00000"
	DefaultMaintenance = "Medium"
)

// Numeric holds a loosely typed number exactly as the client sent it.
// It accepts JSON numbers and strings and is only interpreted on use.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(str))
		return nil
	}
	*n = Numeric(s)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(n), 64); err == nil {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// IntOr returns the value truncated to an int, or def when it is empty or
// not a finite number within the int32 range.
func (n Numeric) IntOr(def int) int {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return def
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return def
		}
		return int(v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return def
	}
	return int(f)
}

func NumericInt(v int) Numeric {
	return Numeric(strconv.Itoa(v))
}

// ProjectState is the flat bag of user-supplied project parameters.
// Empty string fields mean "not supplied" and resolve to defaults.
type ProjectState struct {
	Persona          string  `json:"user_persona"`
	ProjectType      string  `json:"project_type"`
	Style            string  `json:"style"`
	QualityTier      string  `json:"quality_tier"`
	UserBudget       Numeric `json:"user_budget"`
	Dimensions       Numeric `json:"dimensions"`
	Soil             string  `json:"soil"`
	Currency         string  `json:"currency"`
	Terrain          string  `json:"terrain"`
	Usage            string  `json:"usage"`
	Privacy          string  `json:"privacy"`
	WaterFeature     string  `json:"water_feature"`
	ZipCode          string  `json:"zip_code"`
	Climate          string  `json:"climate"`
	MaintenanceLevel string  `json:"maintenance_level"`
	OriginalImage    string  `json:"original_image,omitempty"`
}

// UnmarshalJSON accepts any JSON scalar in every field. Numbers and booleans
// are kept as their literal text; objects and arrays count as absent.
func (s *ProjectState) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		raw[k] = looseScalar(v)
	}

	norm, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	type plain ProjectState
	return json.Unmarshal(norm, (*plain)(s))
}

func looseScalar(v json.RawMessage) json.RawMessage {
	t := bytes.TrimSpace(v)
	if len(t) == 0 {
		return json.RawMessage("null")
	}
	switch t[0] {
	case '"', 'n':
		return t
	case '{', '[':
		return json.RawMessage("null")
	default:
		q, err := json.Marshal(string(t))
		if err != nil {
			return json.RawMessage("null")
		}
		return q
	}
}

func (s ProjectState) DimensionsOrDefault() int {
	return s.Dimensions.IntOr(DefaultDimensions)
}

func (s ProjectState) BudgetOrDefault() int {
	return s.UserBudget.IntOr(DefaultBudget)
}

func (s ProjectState) PersonaOrDefault() string { return or(s.Persona, DefaultPersona) }
func (s ProjectState) WaterFeatureOrDefault() string { return or(s.WaterFeature, DefaultWater) }
func (s ProjectState) SoilOrDefault() string { return or(s.Soil, catalog.DefaultSoil) }
func (s ProjectState) ZipOrDefault() string { return or(s.ZipCode, DefaultZip) }
func (s ProjectState) MaintenanceOrDefault() string { return or(s.MaintenanceLevel, DefaultMaintenance) }
func (s ProjectState) CurrencyOrDefault() string { return or(s.Currency, catalog.DefaultCurrency) }
func (s ProjectState) TierOrDefault() string { return or(s.QualityTier, catalog.DefaultTier) }

// Changes is a partial ProjectState produced by the chat parser.
// Nil fields are left untouched when applied.
type Changes struct {
	Dimensions   *int    `json:"dimensions,omitempty"`
	UserBudget   *int    `json:"user_budget,omitempty"`
	WaterFeature *string `json:"water_feature,omitempty"`
	QualityTier  *string `json:"quality_tier,omitempty"`
}

func (c Changes) Empty() bool {
	return c.Dimensions == nil && c.UserBudget == nil && c.WaterFeature == nil && c.QualityTier == nil
}

// Apply returns a copy of s with every set field of c written over it.
func (s ProjectState) Apply(c Changes) ProjectState {
	if c.Dimensions != nil {
		s.Dimensions = NumericInt(*c.Dimensions)
	}
	if c.UserBudget != nil {
		s.UserBudget = NumericInt(*c.UserBudget)
	}
	if c.WaterFeature != nil {
		s.WaterFeature = *c.WaterFeature
	}
	if c.QualityTier != nil {
		s.QualityTier = *c.QualityTier
	}
	return s
}

type BudgetStatus string

const (
	WithinBudget BudgetStatus = "Within Budget"
	OverBudget   BudgetStatus = "Over Budget"
)

// Color is the CSS class the form uses for the verdict.
func (b BudgetStatus) Color() string {
	if b == WithinBudget {
		return "text-neon-lime"
	}
	return "text-red-400"
}

// BillOfMaterialsLine is a display-ready BOM row; money is pre-formatted.
type BillOfMaterialsLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
	Unit     string `json:"unit"`
	Rate     string `json:"rate"`
	Total    string `json:"total"`
}

type MaintenanceTask struct {
	Plant       string `json:"plant"`
	Watering    string `json:"watering"`
	Pruning     string `json:"pruning"`
	Fertilizing string `json:"fertilizing"`
}

// Result is one computed plan. It is never modified after Compute returns.
type Result struct {
	Cost                string                `json:"cost"`
	BudgetStatus        BudgetStatus          `json:"budget_status"`
	StatusColor         string                `json:"status_color"`
	BOM                 []BillOfMaterialsLine `json:"bom"`
	Render3DURL         string                `json:"url_3d"`
	Render2DURL         string                `json:"url_2d"`
	RecommendedPlants   []catalog.Plant       `json:"recommended_plants"`
	MaintenanceSchedule []MaintenanceTask     `json:"maintenance_schedule"`
	Season              string                `json:"current_season"`
	Climate             string                `json:"climate"`
	State               ProjectState          `json:"state"`
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
