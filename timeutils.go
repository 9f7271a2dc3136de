package journeyplanner

import (
	"time"
)

func iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func iso8601FromTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
