package plan

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/catalog"
	"github.com/Gk2403-techi/greenscape/internal/core"
	"github.com/Gk2403-techi/greenscape/internal/logging"
)

const (
	mulchCoverage    = 15 // area units covered by one bag
	laborAreaPerHour = 20
)

type areaSplit struct {
	hardscape float64
	softscape float64
}

func splitFor(persona string) areaSplit {
	switch persona {
	case "Farmer":
		return areaSplit{hardscape: 0.05, softscape: 0.95}
	case "Architect", "Landscaping Business":
		return areaSplit{hardscape: 0.40, softscape: 0.40}
	default:
		return areaSplit{hardscape: 0.30, softscape: 0.50}
	}
}

type specialItem struct {
	name string
	cost float64
}

func specialFor(waterFeature, persona string) specialItem {
	switch {
	case waterFeature == "Swimming Pool":
		return specialItem{"Pool Install", 15000}
	case waterFeature == "Koi Pond":
		return specialItem{"Pond Install", 5000}
	case persona == "Farmer":
		return specialItem{"Irrigation System", 2500}
	default:
		return specialItem{"Design Fee", 0}
	}
}

// Engine turns a ProjectState into a priced, planted, rendered plan.
type Engine struct {
	ref    *catalog.Reference
	images core.ImageProvider
	rnd    core.Random
	logger *zap.Logger
}

func NewEngine(ref *catalog.Reference, images core.ImageProvider, rnd core.Random, logger *zap.Logger) *Engine {
	if rnd == nil {
		rnd = core.SystemRandom()
	}
	return &Engine{
		ref:    ref,
		images: images,
		rnd:    rnd,
		logger: logging.OrNop(logger),
	}
}

type rawLine struct {
	name  string
	qty   int
	unit  string
	rate  float64
	total float64
}

// Compute builds the plan for state. It never fails: malformed numbers and
// unknown lookup keys fall back to their defaults.
func (e *Engine) Compute(ctx context.Context, state ProjectState) *Result {
	dims := state.DimensionsOrDefault()
	tier := e.ref.Tier(state.TierOrDefault())
	currency := e.ref.Currency(state.CurrencyOrDefault())
	persona := state.PersonaOrDefault()
	water := state.WaterFeatureOrDefault()
	soil := state.SoilOrDefault()

	split := splitFor(persona)
	hardArea := int(float64(dims) * split.hardscape)
	softArea := int(float64(dims) * split.softscape)
	mulchQty := max(1, softArea/mulchCoverage)
	special := specialFor(water, persona)

	lines := []rawLine{
		{
			name:  tier.Hardscape.Name,
			qty:   hardArea,
			unit:  tier.Hardscape.Unit,
			rate:  tier.Hardscape.UnitPrice,
			total: float64(hardArea) * tier.Hardscape.UnitPrice,
		},
		{
			name:  tier.Softscape.Name,
			qty:   mulchQty,
			unit:  tier.Softscape.Unit,
			rate:  tier.Softscape.UnitPrice,
			total: float64(mulchQty) * tier.Softscape.UnitPrice,
		},
		{
			name:  special.name,
			qty:   1,
			unit:  "lot",
			rate:  special.cost,
			total: special.cost,
		},
	}

	laborHours := dims / laborAreaPerHour
	laborCost := float64(laborHours) * e.ref.LaborRate(catalog.GeneralLabor).HourlyRate

	grandTotal := laborCost
	bom := make([]BillOfMaterialsLine, 0, len(lines))
	for _, l := range lines {
		grandTotal += l.total
		bom = append(bom, BillOfMaterialsLine{
			Name:     l.name,
			Quantity: l.qty,
			Unit:     l.unit,
			Rate:     formatRate(currency.Symbol, l.rate, currency.Rate),
			Total:    formatAmount(currency.Symbol, l.total, currency.Rate),
		})
	}

	status := OverBudget
	if grandTotal*currency.Rate <= float64(state.BudgetOrDefault()) {
		status = WithinBudget
	}

	region := ResolveRegion(state.ZipOrDefault())
	climate := region.Climate
	if state.Climate != "" {
		climate = state.Climate
	}

	candidates := filterPlants(e.ref.Plants, region.Season, soil, state.MaintenanceOrDefault())
	selected := samplePlants(e.rnd, candidates, maxRecommendedPlants)

	subject := renderSubject{
		ProjectType:  state.ProjectType,
		Persona:      persona,
		WaterFeature: water,
		Material:     tier.Hardscape.Name,
		Soil:         soil,
		Style:        state.Style,
		Terrain:      state.Terrain,
	}

	return &Result{
		Cost:                formatAmount(currency.Symbol, grandTotal, currency.Rate),
		BudgetStatus:        status,
		StatusColor:         status.Color(),
		BOM:                 bom,
		Render3DURL:         e.render(ctx, aerialPrompt(subject)),
		Render2DURL:         e.render(ctx, blueprintPrompt(subject)),
		RecommendedPlants:   selected,
		MaintenanceSchedule: maintenanceSchedule(selected),
		Season:              region.Season,
		Climate:             climate,
		State:               state,
	}
}

func (e *Engine) render(ctx context.Context, prompt string) string {
	if e.images == nil {
		return ""
	}
	url, err := e.images.Generate(ctx, prompt)
	if err != nil {
		e.logger.Warn("render failed", zap.Error(err))
		return ""
	}
	return url
}

var (
	variationStyles = []string{"Modern", "Traditional", "Rustic", "Minimalist"}
	variationTiers  = []string{"Economy", "Standard", "Premium"}
)

const (
	BulkVariations = 3
	budgetJitter   = 5000
)

// Variations computes n plans from copies of state, each with a random
// style, a random tier and the budget moved by up to ±5000.
func (e *Engine) Variations(ctx context.Context, state ProjectState, n int) []*Result {
	out := make([]*Result, 0, n)
	for i := 0; i < n; i++ {
		v := state
		v.Style = variationStyles[e.rnd.IntN(len(variationStyles))]
		v.QualityTier = variationTiers[e.rnd.IntN(len(variationTiers))]
		v.UserBudget = NumericInt(state.BudgetOrDefault() + e.rnd.IntN(2*budgetJitter+1) - budgetJitter)
		out = append(out, e.Compute(ctx, v))
	}
	return out
}
