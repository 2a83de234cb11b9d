package plan

import (
	"slices"
	"strings"

	"github.com/Gk2403-techi/greenscape/internal/catalog"
	"github.com/Gk2403-techi/greenscape/internal/core"
)

const maxRecommendedPlants = 5

// filterPlants keeps plants in season (or evergreen) that grow in soil.
// A "Low" maintenance level further keeps only drought tolerant or
// minimal-pruning plants; "Medium" and "High" do not narrow the set.
func filterPlants(plants []catalog.Plant, season, soil, maintenance string) []catalog.Plant {
	var out []catalog.Plant
	for _, p := range plants {
		if p.Season != season && p.Season != "Evergreen" {
			continue
		}
		if !p.GrowsIn(soil) {
			continue
		}
		if maintenance == "Low" && !isLowMaintenance(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isLowMaintenance(p catalog.Plant) bool {
	return strings.Contains(strings.ToLower(p.Maintenance.Watering), "drought tolerant") ||
		strings.Contains(strings.ToLower(p.Maintenance.Pruning), "minimal")
}

// samplePlants draws up to k plants uniformly without replacement.
func samplePlants(rnd core.Random, plants []catalog.Plant, k int) []catalog.Plant {
	n := min(k, len(plants))
	if n <= 0 {
		return []catalog.Plant{}
	}
	pool := slices.Clone(plants)
	for i := 0; i < n; i++ {
		j := i + rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}

func maintenanceSchedule(plants []catalog.Plant) []MaintenanceTask {
	out := make([]MaintenanceTask, 0, len(plants))
	for _, p := range plants {
		out = append(out, MaintenanceTask{
			Plant:       p.Name,
			Watering:    p.Maintenance.Watering,
			Pruning:     p.Maintenance.Pruning,
			Fertilizing: p.Maintenance.Fertilizing,
		})
	}
	return out
}
