/*
Package network provides transit network loading and indexing.

A network is loaded once at startup and kept in memory: the Graph holds
directed travel edges for the search, the RouteIndex holds declared stop
sequences for equivalence lookups, and the StationRegistry holds display
names.

# Basic Usage

Load from a file:

	net, err := network.LoadNetworkFile("network.json")
	if err != nil {
	    log.Fatal(err)
	}
	net.Issues.LogAll("network.json")

	edges := net.Graph.Neighbors("A")
	stops, ok := net.Routes.RouteStations("R1")

# Formats

Two source formats feed the same record set:

  - .json: {"stations":[...], "routes":[...], "edges":[...]}. A route with
    per-hop "durations" derives one edge per direction per hop; explicit
    edges are directed as given, so a bidirectional link is two records.
  - .txt: line-oriented "station", "edge" and "route" lines; "#" starts a
    comment.

# Validation

Loaders never fail on bad records. Offending records are dropped or
repaired and reported through Diagnostics in consolidated form; only an
unreadable source returns an error.
*/
package network
