package network

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned when a source name carries neither a
// .json nor a .txt extension.
var ErrUnsupportedFormat = errors.New("unsupported network format")

// Network bundles everything loaded from one source. Bad records never fail
// a load; they are dropped or repaired and reported through Issues.
type Network struct {
	Graph    *Graph
	Routes   *RouteIndex
	Stations *StationRegistry
	Issues   *Diagnostics
	LoadedAt time.Time
}

// stationRecord, routeRecord and edgeRecord are the format-independent
// records both decoders produce. The JSON format maps onto them directly;
// the flat-text format is parsed into them line by line.
type stationRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type routeRecord struct {
	ID        string   `json:"id"`
	Operator  string   `json:"operator"`
	Stations  []string `json:"stations"`
	Durations []int    `json:"durations,omitempty"`
}

type edgeRecord struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Route    string `json:"route"`
	Operator string `json:"operator"`
	Minutes  int    `json:"minutes"`
}

type networkData struct {
	stations []stationRecord
	routes   []routeRecord
	edges    []edgeRecord
}

// LoadNetworkFile loads a network from a local .json or .txt file.
func LoadNetworkFile(filePath string) (*Network, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open network file: %w", err)
	}
	defer f.Close()
	return decodeNetwork(f, filePath)
}

// LoadNetworkURL fetches a network over HTTP. The format is chosen by the
// extension of the URL path.
func LoadNetworkURL(url string) (*Network, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch network: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch network: unexpected status %s", resp.Status)
	}
	return decodeNetwork(resp.Body, url)
}

func decodeNetwork(r io.Reader, source string) (*Network, error) {
	name := source
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return loadJSON(r)
	case ".txt":
		return loadText(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, source)
	}
}

func loadJSON(r io.Reader) (*Network, error) {
	var doc struct {
		Stations []stationRecord `json:"stations"`
		Routes   []routeRecord   `json:"routes"`
		Edges    []edgeRecord    `json:"edges"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode network json: %w", err)
	}
	data := networkData{stations: doc.Stations, routes: doc.Routes, edges: doc.Edges}
	return assemble(data, NewDiagnostics()), nil
}

// loadText parses the line-oriented format:
//
//	# comment
//	station <id> <display name...>
//	edge <from> <to> <route> <operator> <minutes>
//	route <id> <operator> <stop1,stop2,...>
func loadText(r io.Reader) (*Network, error) {
	var data networkData
	issues := NewDiagnostics()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "station":
			if len(fields) < 2 {
				issues.Add(IssueMalformedLine, lineRef(lineNo))
				continue
			}
			data.stations = append(data.stations, stationRecord{
				ID:   fields[1],
				Name: strings.Join(fields[2:], " "),
			})
		case "edge":
			if len(fields) != 6 {
				issues.Add(IssueMalformedLine, lineRef(lineNo))
				continue
			}
			minutes, err := strconv.Atoi(fields[5])
			if err != nil {
				issues.Add(IssueMalformedLine, lineRef(lineNo))
				continue
			}
			data.edges = append(data.edges, edgeRecord{
				From:     fields[1],
				To:       fields[2],
				Route:    fields[3],
				Operator: fields[4],
				Minutes:  minutes,
			})
		case "route":
			if len(fields) != 4 {
				issues.Add(IssueMalformedLine, lineRef(lineNo))
				continue
			}
			data.routes = append(data.routes, routeRecord{
				ID:       fields[1],
				Operator: fields[2],
				Stations: strings.Split(fields[3], ","),
			})
		default:
			issues.Add(IssueMalformedLine, lineRef(lineNo))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read network text: %w", err)
	}
	return assemble(data, issues), nil
}

func lineRef(n int) string {
	return "line " + strconv.Itoa(n)
}

// assemble validates the decoded records and builds the graph, route index
// and station registry. Offending records are repaired or dropped and
// reported; assembly itself never fails.
func assemble(data networkData, issues *Diagnostics) *Network {
	stations := NewStationRegistry()
	for _, s := range data.stations {
		stations.Add(s.ID, s.Name)
	}

	registerStation := func(id, issueType string) {
		if !stations.Has(id) {
			issues.Add(issueType, id)
			stations.Add(id, "")
		}
	}

	var routes []Route
	var edges []Edge
	seenRoutes := map[string]struct{}{}
	for _, rec := range data.routes {
		if _, dup := seenRoutes[rec.ID]; dup {
			issues.Add(IssueDuplicateRoute, rec.ID)
			continue
		}
		seenRoutes[rec.ID] = struct{}{}
		if rec.Operator == "" {
			issues.Add(IssueRouteNoOperator, rec.ID)
		}
		for _, id := range rec.Stations {
			registerStation(id, IssueRouteUnknownStation)
		}
		routes = append(routes, Route{ID: rec.ID, Operator: rec.Operator, Stations: rec.Stations})

		if len(rec.Stations) < 2 {
			issues.Add(IssueRouteTooShort, rec.ID)
			continue
		}
		if rec.Durations == nil {
			continue
		}
		if len(rec.Durations) != len(rec.Stations)-1 {
			issues.Add(IssueDurationMismatch, rec.ID)
			continue
		}
		// A route with per-hop durations is ridable in both directions.
		for i, minutes := range rec.Durations {
			if minutes < 0 {
				issues.Add(IssueNegativeDuration, rec.ID)
				continue
			}
			a, b := rec.Stations[i], rec.Stations[i+1]
			edges = append(edges,
				Edge{From: a, To: b, RouteID: rec.ID, Operator: rec.Operator, Minutes: minutes},
				Edge{From: b, To: a, RouteID: rec.ID, Operator: rec.Operator, Minutes: minutes},
			)
		}
	}

	for _, rec := range data.edges {
		switch {
		case rec.Route == "":
			issues.Add(IssueEdgeNoRoute, rec.From+"-"+rec.To)
			continue
		case rec.Minutes < 0:
			issues.Add(IssueNegativeDuration, rec.From+"-"+rec.To)
			continue
		case rec.From == rec.To:
			issues.Add(IssueSelfLoop, rec.From)
			continue
		}
		registerStation(rec.From, IssueUnknownStation)
		registerStation(rec.To, IssueUnknownStation)
		if _, declared := seenRoutes[rec.Route]; !declared && len(data.routes) > 0 {
			issues.Add(IssueEdgeUndeclaredRoute, rec.Route)
		}
		edges = append(edges, Edge{
			From:     rec.From,
			To:       rec.To,
			RouteID:  rec.Route,
			Operator: rec.Operator,
			Minutes:  rec.Minutes,
		})
	}

	return &Network{
		Graph:    BuildGraph(edges),
		Routes:   BuildRouteIndex(routes),
		Stations: stations,
		Issues:   issues,
		LoadedAt: time.Now().UTC(),
	}
}
