/*
Package planner turns raw search results into presentable journey plans.

The Planner facade owns the loaded network and the fare table. For a pair
of stations it runs the search once per requested mode, decomposes each
resulting path into single-route ride segments, and annotates every
segment with the other routes of the same operator that could serve it.

# Basic Usage

	p := planner.New(net, pricing)
	plan := p.Plan("A", "C")
	for _, it := range plan.Itineraries {
	    if !it.Found {
	        continue
	    }
	    ...
	}

A mode that finds no path produces an Itinerary with Found set to false;
planning never returns an error.
*/
package planner
