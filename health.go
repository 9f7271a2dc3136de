package journeyplanner

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status        string `json:"status"`
	Stations      int    `json:"stations"`
	Routes        int    `json:"routes"`
	Edges         int    `json:"edges"`
	NetworkLoaded string `json:"network_loaded"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:        "ok",
		Stations:      a.network.Stations.Len(),
		Routes:        a.network.Routes.RouteCount(),
		Edges:         a.network.Graph.EdgeCount(),
		NetworkLoaded: iso8601FromTime(a.network.LoadedAt),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
