package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Clamp returns v limited to the range min..max.
func Clamp[T constraints.Ordered](min, v, max T) T {
	return Max(min, Min(v, max))
}

// Max returns the largest provided argument. If no arguments are provided, it
// returns the zero value for T.
func Max[T constraints.Ordered](v ...T) T {
	var max T
	for i, o := range v {
		if i == 0 || o > max {
			max = o
		}
	}

	return max
}

// Min returns the smallest provided argument. If no arguments are provided, it
// returns the zero value for T.
func Min[T constraints.Ordered](v ...T) T {
	var min T
	for i, o := range v {
		if i == 0 || o < min {
			min = o
		}
	}

	return min
}

// ByCount returns the distinct values of v, most frequent first. Values that
// occur equally often are ordered by value.
func ByCount[T constraints.Ordered](v []T) []T {
	counts := map[T]int{}
	for _, o := range v {
		counts[o]++
	}

	distinct := make([]T, 0, len(counts))
	for o := range counts {
		distinct = append(distinct, o)
	}

	sort.Slice(distinct, func(i, j int) bool {
		ci, cj := counts[distinct[i]], counts[distinct[j]]
		if ci != cj {
			return ci > cj
		}
		return distinct[i] < distinct[j]
	})

	return distinct
}
