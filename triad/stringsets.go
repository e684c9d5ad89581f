package triad

import "github.com/jsphweid/fretdex/instrument"

var fretboardStringSets = [][]int{
	{0, 1, 2}, {1, 2, 3}, {2, 3, 4}, {3, 4, 5},
	{0, 1, 3}, {1, 2, 4}, {2, 3, 5},
	{0, 2, 3}, {1, 3, 4}, {2, 4, 5},
}

// StringSetsFor returns the string triples searched by the string-sets
// strategy. Fretboards use the fixed six-string catalog; grids get the same
// shapes generated for their row count.
func StringSetsFor(layout instrument.Layout) [][]int {
	if _, ok := layout.(instrument.Grid); ok {
		return rowSets(layout.Lines())
	}
	res := make([][]int, len(fretboardStringSets))
	for i, set := range fretboardStringSets {
		res[i] = append([]int(nil), set...)
	}
	return res
}

func rowSets(rows int) [][]int {
	var res [][]int
	for a := 0; a+2 < rows; a++ {
		res = append(res, []int{a, a + 1, a + 2})
	}
	for a := 0; a+3 < rows; a++ {
		res = append(res, []int{a, a + 1, a + 3})
	}
	for a := 0; a+3 < rows; a++ {
		res = append(res, []int{a, a + 2, a + 3})
	}
	return res
}
