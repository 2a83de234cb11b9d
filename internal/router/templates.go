package router

import (
	"embed"
	"encoding/json"
	"html/template"
	"reflect"
)

//go:embed templates/*.html
var templateFS embed.FS

// tojson renders v as a JavaScript literal, or null for nil and empty values.
func tojson(v any) template.JS {
	if v == nil {
		return "null"
	}
	if rv := reflect.ValueOf(v); (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice) && rv.IsNil() {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return template.JS(b)
}

func loadTemplates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"tojson": tojson}).
		ParseFS(templateFS, "templates/*.html")
}
