package journeyplanner

import (
	"fmt"
	"log"
	"strings"

	"github.com/theoremus-urban-solutions/journey-planner/config"
	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
	"github.com/theoremus-urban-solutions/journey-planner/routing"
)

// App bundles the loaded network with the planner and renderer built on
// top of it. One App serves both the HTTP handlers and the CLI.
type App struct {
	cfg       config.AppConfig
	network   *network.Network
	planner   *planner.Planner
	responses *responseBuilder
}

// NewApp loads the configured network and wires the planning stack over
// it. Loader diagnostics are logged once here.
func NewApp(cfg config.AppConfig, netCfg config.NetworkConfig) (*App, error) {
	net, err := loadNetwork(netCfg.Source)
	if err != nil {
		return nil, fmt.Errorf("load network %q: %w", netCfg.Name, err)
	}
	net.Issues.LogAll(netCfg.Source)
	log.Printf("network %q loaded: %d stations, %d routes, %d edges",
		netCfg.Name, net.Stations.Len(), net.Routes.RouteCount(), net.Graph.EdgeCount())

	p := planner.New(net, routing.Pricing(cfg.Pricing))
	return &App{
		cfg:       cfg,
		network:   net,
		planner:   p,
		responses: newResponseBuilder(p),
	}, nil
}

// loadNetwork dispatches on the source shape: anything that is not
// http(s) is a local file path.
func loadNetwork(source string) (*network.Network, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return network.LoadNetworkURL(source)
	}
	return network.LoadNetworkFile(source)
}

// Itineraries answers one plan request. It validates the raw query
// parameters, runs the requested modes and renders the response in the
// requested format, returning the payload and its content type. A
// *QueryError marks an invalid request.
func (a *App) Itineraries(params map[string]string) ([]byte, string, error) {
	q, err := parseAndValidatePlanQuery(params, a.network)
	if err != nil {
		return nil, "", err
	}
	plan := a.planner.PlanModes(q.from, q.to, q.modes)
	res := NewPlanResponse(plan)
	if q.format == formatText {
		return a.responses.BuildText(res), "text/plain; charset=utf-8", nil
	}
	return a.responses.BuildJSON(res), "application/json", nil
}
