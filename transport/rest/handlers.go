package rest

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/fourweek-cli/internal/entity"
)

var mapsPage = template.Must(template.New("maps").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<!DOCTYPE html>
<html>
<head><title>API Looking Glass</title></head>
<body>
<h1>Maps</h1>
<table id="maps_table">
<tr><th>Map</th><th>Rounds</th></tr>
{{range .}}<tr><td>{{.Name}}</td><td>{{join .Rounds ","}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type mapLister interface {
	ListMaps(ctx context.Context) ([]entity.Map, error)
}

type MapsHandler struct {
	logger *slog.Logger
	maps   mapLister
}

func NewMapsHandler(logger *slog.Logger, maps mapLister) *MapsHandler {
	return &MapsHandler{
		logger: logger.With("component", "looking-glass"),
		maps:   maps,
	}
}

// ServeHTTP - polls the service for its maps and renders them as a table.
func (that *MapsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	maps, err := that.maps.ListMaps(r.Context())
	if err != nil {
		that.logger.Error("failed to list maps", "error", err)
		http.Error(w, "Failed to get maps", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err = mapsPage.Execute(w, maps); err != nil {
		that.logger.Error("failed to render maps", "error", err)
	}
}
