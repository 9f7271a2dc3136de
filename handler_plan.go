package journeyplanner

import (
	"encoding/json"
	"net/http"
)

func (a *App) handleItineraries(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	buf, contentType, err := a.Itineraries(params)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf)
}

func (a *App) handleStations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	type stationEntry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	entries := make([]stationEntry, 0, a.network.Stations.Len())
	for _, id := range a.network.Stations.IDs() {
		entries = append(entries, stationEntry{ID: id, Name: a.network.Stations.StationName(id)})
	}
	b, _ := json.Marshal(map[string]any{"stations": entries})
	_, _ = w.Write(b)
}

func (a *App) handleRoutes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	type routeEntry struct {
		ID       string   `json:"id"`
		Operator string   `json:"operator"`
		Stations []string `json:"stations"`
	}
	entries := make([]routeEntry, 0, a.network.Routes.RouteCount())
	for _, id := range a.network.Routes.Routes() {
		stations, _ := a.network.Routes.RouteStations(id)
		operator, _ := a.network.Routes.RouteOperator(id)
		entries = append(entries, routeEntry{ID: id, Operator: operator, Stations: stations})
	}
	b, _ := json.Marshal(map[string]any{"routes": entries})
	_, _ = w.Write(b)
}
