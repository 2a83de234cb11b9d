package plan

import "fmt"

type renderSubject struct {
	ProjectType  string
	Persona      string
	WaterFeature string
	Material     string
	Soil         string
	Style        string
	Terrain      string
}

func aerialPrompt(s renderSubject) string {
	return fmt.Sprintf(
		"photorealistic 3d aerial render of %s, designed for %s, featuring %s and %s pathways, "+
			"on %s soil, %s style, %s terrain, highly detailed",
		s.ProjectType, s.Persona, s.WaterFeature, s.Material, s.Soil, s.Style, s.Terrain,
	)
}

func blueprintPrompt(s renderSubject) string {
	return fmt.Sprintf(
		"2D technical blueprint for %s, designed for %s, featuring %s and %s pathways, "+
			"on %s soil, %s style, %s terrain, top-down plan view with labeled zones",
		s.ProjectType, s.Persona, s.WaterFeature, s.Material, s.Soil, s.Style, s.Terrain,
	)
}
