package engine

import (
	"cmp"
	"slices"
)

// UniformOrDistinct reports whether the values are either all identical or
// pairwise distinct. Sorting then compacting turns the distinctness test into a
// length comparison.
func UniformOrDistinct[T cmp.Ordered](vals []T) bool {
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	unique := slices.Compact(sorted)
	return len(unique) == len(vals) || len(unique) == 1
}

// Verdict is the outcome of a match check.
type Verdict struct {
	ColorMatch bool
	ShapeMatch bool
}

// Match returns true if both the color and the shape rule hold.
func (v Verdict) Match() bool {
	return v.ColorMatch && v.ShapeMatch
}

// Evaluate applies the match rule to a set of tiles.
//
// Colors and shapes are judged independently; each axis passes when its values
// are all the same or all different. Two of one color and one of another is
// never a match.
func Evaluate(attrs []Attributes) Verdict {
	colors := make([]Color, len(attrs))
	shapes := make([]Shape, len(attrs))
	for i, a := range attrs {
		colors[i] = a.Color
		shapes[i] = a.Shape
	}
	return Verdict{
		ColorMatch: UniformOrDistinct(colors),
		ShapeMatch: UniformOrDistinct(shapes),
	}
}

// IsMatch is shorthand for Evaluate(attrs).Match().
func IsMatch(attrs []Attributes) bool {
	return Evaluate(attrs).Match()
}

// kind identifies a (color, shape) pair regardless of visibility.
type kind struct {
	color Color
	shape Shape
}

// MatchExists reports whether some arity-sized subset of the given tiles is a match.
// Tiles are grouped by kind and combinations of kinds are enumerated with
// repetition, pruning any prefix that already breaks the rule.
func MatchExists(attrs []Attributes, arity int) bool {
	if arity <= 0 || len(attrs) < arity {
		return false
	}

	counts := make(map[kind]int)
	for _, a := range attrs {
		counts[kind{a.Color, a.Shape}]++
	}
	kinds := make([]kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b kind) int {
		if c := cmp.Compare(a.color, b.color); c != 0 {
			return c
		}
		return cmp.Compare(a.shape, b.shape)
	})

	colors := make([]Color, 0, arity)
	shapes := make([]Shape, 0, arity)
	used := make([]int, len(kinds))

	var search func(start int) bool
	search = func(start int) bool {
		if len(colors) == arity {
			return true
		}
		for i := start; i < len(kinds); i++ {
			if used[i] == counts[kinds[i]] {
				continue
			}
			colors = append(colors, kinds[i].color)
			shapes = append(shapes, kinds[i].shape)
			used[i]++
			if UniformOrDistinct(colors) && UniformOrDistinct(shapes) && search(i) {
				return true
			}
			used[i]--
			colors = colors[:len(colors)-1]
			shapes = shapes[:len(shapes)-1]
		}
		return false
	}
	return search(0)
}
