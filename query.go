package journeyplanner

import (
	"encoding/json"
	"strings"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/routing"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

const (
	formatJSON = "json"
	formatText = "text"
)

// planQuery is a validated itinerary request.
type planQuery struct {
	from   string
	to     string
	modes  []routing.Mode
	format string
}

func normalizeFormat(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == formatJSON {
		return formatJSON, nil
	}
	if s == formatText {
		return formatText, nil
	}
	return "", &QueryError{Msg: "Unsupported format: " + s}
}

// parseModesParam expands the mode parameter into search modes. An empty
// parameter selects every mode.
func parseModesParam(s string) ([]routing.Mode, error) {
	if strings.TrimSpace(s) == "" {
		return routing.Modes(), nil
	}
	var modes []routing.Mode
	for _, raw := range strings.Split(s, ",") {
		mode, ok := routing.ParseMode(raw)
		if !ok {
			return nil, &QueryError{Msg: "Unsupported mode: " + strings.TrimSpace(raw)}
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func ensureStationExists(param, id string, net *network.Network) (string, error) {
	if id == "" {
		return "", &QueryError{Msg: "You must provide a " + param + " station."}
	}
	if !net.Stations.Has(id) {
		return "", &QueryError{Msg: "No such station: " + id + "."}
	}
	return id, nil
}

func parseAndValidatePlanQuery(params map[string]string, net *network.Network) (planQuery, error) {
	m := map[string]string{}
	for k, v := range params {
		m[lower(k)] = strings.TrimSpace(v)
	}
	var q planQuery
	var err error
	if q.from, err = ensureStationExists("from", m["from"], net); err != nil {
		return q, err
	}
	if q.to, err = ensureStationExists("to", m["to"], net); err != nil {
		return q, err
	}
	if q.modes, err = parseModesParam(m["mode"]); err != nil {
		return q, err
	}
	if q.format, err = normalizeFormat(m["format"]); err != nil {
		return q, err
	}
	return q, nil
}

func lower(s string) string {
	bs := []rune(s)
	for i, r := range bs {
		if r >= 'A' && r <= 'Z' {
			bs[i] = r + 32
		}
	}
	return string(bs)
}

func buildErrorPayload(msg string) []byte {
	type planErr struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	var e planErr
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}
