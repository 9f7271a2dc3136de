package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/routing"
)

func byElapsed(a, b *routing.Label) bool { return a.Elapsed < b.Elapsed }

func TestFrontier_ExtractsInComparatorOrder(t *testing.T) {
	f := routing.NewFrontier(byElapsed)
	for _, minutes := range []int{12, 3, 7, 1, 9} {
		f.Insert(&routing.Label{Station: "S", Elapsed: minutes})
	}

	var got []int
	for !f.Empty() {
		got = append(got, f.ExtractMin().Elapsed)
	}
	require.Equal(t, []int{1, 3, 7, 9, 12}, got)
}

func TestFrontier_AllowsDuplicates(t *testing.T) {
	f := routing.NewFrontier(byElapsed)
	f.Insert(&routing.Label{Station: "A", Route: "R1", Elapsed: 5})
	f.Insert(&routing.Label{Station: "A", Route: "R1", Elapsed: 5})
	f.Insert(&routing.Label{Station: "A", Route: "R1", Elapsed: 2})

	require.Equal(t, 3, f.Len())
	require.Equal(t, 2, f.ExtractMin().Elapsed)
	require.Equal(t, 5, f.ExtractMin().Elapsed)
	require.Equal(t, 5, f.ExtractMin().Elapsed)
	require.True(t, f.Empty())
}

func TestFrontier_EmptyExtractReturnsNil(t *testing.T) {
	f := routing.NewFrontier(byElapsed)
	require.True(t, f.Empty())
	require.Nil(t, f.ExtractMin())
}

func TestFrontier_InterleavedInsertExtract(t *testing.T) {
	f := routing.NewFrontier(byElapsed)
	f.Insert(&routing.Label{Elapsed: 10})
	f.Insert(&routing.Label{Elapsed: 4})
	require.Equal(t, 4, f.ExtractMin().Elapsed)

	f.Insert(&routing.Label{Elapsed: 1})
	f.Insert(&routing.Label{Elapsed: 6})
	require.Equal(t, 1, f.ExtractMin().Elapsed)
	require.Equal(t, 6, f.ExtractMin().Elapsed)
	require.Equal(t, 10, f.ExtractMin().Elapsed)
	require.True(t, f.Empty())
}

func TestFrontier_ComparatorIsFixedAtConstruction(t *testing.T) {
	byCost := func(a, b *routing.Label) bool { return a.Cost < b.Cost }
	f := routing.NewFrontier(byCost)
	f.Insert(&routing.Label{Elapsed: 1, Cost: 9})
	f.Insert(&routing.Label{Elapsed: 9, Cost: 1})

	// Cost order wins regardless of elapsed times.
	require.Equal(t, 1, f.ExtractMin().Cost)
	require.Equal(t, 9, f.ExtractMin().Cost)
}
