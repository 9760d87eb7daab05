package layout

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// A flexbox-style layout for terminal cells. Rows and columns carry items
// with min/max constraints over absolute or relative sizes; the space
// distribution along the main axis is solved as a small linear program.

type Point struct {
	X, Y int
}

// Dimensions is the resolved box of an item. Origin is the top-left corner.
type Dimensions struct {
	Origin        Point
	Width, Height int
}

// LayoutBox receives the item's resolved dimensions and draws into them.
type LayoutBox func(Dimensions)

func EmptyBox(Dimensions) {}

type Direction int

const (
	Y Direction = iota
	X
)

type Size struct {
	abs int
	rel float64 // fraction of the axis, [0, 1]
}

func Abs(abs int) Size { return Size{abs: abs} }

func Rel(rel float64) Size { return Size{rel: rel} }

func (s Size) toAbs(total int) int {
	if s.abs != 0 {
		return s.abs
	}
	return int(s.rel * float64(total))
}

type Constraint struct {
	Min, Max Size
}

func Exact(size Size) Constraint { return Constraint{Min: size, Max: size} }

func Max(size Size) Constraint { return Constraint{Min: Abs(0), Max: size} }

type FlexItem struct {
	Box  LayoutBox
	Flex *Flex
	Size Constraint
}

func FlexItemBox(box LayoutBox, size Constraint, flex *Flex) FlexItem {
	return FlexItem{Box: box, Size: size, Flex: flex}
}

type Flex struct {
	Dir   Direction // direction of the main axis
	Items []FlexItem
}

func Column(items ...FlexItem) *Flex { return &Flex{Dir: Y, Items: items} }

func Row(items ...FlexItem) *Flex { return &Flex{Dir: X, Items: items} }

func (f *Flex) StartLayouting(width, height int) {
	f.layout(Dimensions{Origin: Point{0, 0}, Width: width, Height: height})
}

func (f *Flex) layout(dims Dimensions) {
	total := dims.Height
	if f.Dir == X {
		total = dims.Width
	}

	mins := make([]int, len(f.Items))
	maxs := make([]int, len(f.Items))
	for i, item := range f.Items {
		mins[i] = item.Size.Min.toAbs(total)
		maxs[i] = item.Size.Max.toAbs(total)
		if maxs[i] < mins[i] {
			maxs[i] = mins[i]
		}
	}

	sizes := distribute(total, mins, maxs)

	orig := dims.Origin
	for i, item := range f.Items {
		var d Dimensions
		if f.Dir == Y {
			d = Dimensions{orig, dims.Width, sizes[i]}
			orig = Point{orig.X, orig.Y + d.Height}
		} else {
			d = Dimensions{orig, sizes[i], dims.Height}
			orig = Point{orig.X + d.Width, orig.Y}
		}
		if item.Box != nil {
			item.Box(d)
		}
		if item.Flex != nil {
			item.Flex.layout(d)
		}
	}
}

// distribute maximizes the used span subject to per-item min/max bounds and
// the axis total. With x_i the space an item gets beyond its minimum and
// one slack per bound the problem is the standard-form LP
//
//	min  -Σ x_i    s.t.  x_i + s_i = max_i - min_i,  Σ x_i + S = total - Σ min_i
//
// the same program the simplex experiments for this layout started from.
func distribute(total int, mins, maxs []int) []int {
	n := len(mins)
	sizes := make([]int, n)
	if n == 0 || total <= 0 {
		return sizes
	}

	minSum := 0
	for _, m := range mins {
		minSum += m
	}
	if minSum >= total {
		// minimums alone overflow the axis, shrink proportionally
		for i, m := range mins {
			sizes[i] = m * total / minSum
		}
		return sizes
	}

	cols := 2*n + 1
	c := make([]float64, cols)
	for i := 0; i < n; i++ {
		c[i] = -1
	}
	a := mat.NewDense(n+1, cols, nil)
	b := make([]float64, n+1)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
		a.Set(i, n+i, 1)
		b[i] = float64(maxs[i] - mins[i])
	}
	for i := 0; i < n; i++ {
		a.Set(n, i, 1)
	}
	a.Set(n, cols-1, 1)
	b[n] = float64(total - minSum)

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return distributeGreedy(total, mins, maxs)
	}
	for i := 0; i < n; i++ {
		sizes[i] = mins[i] + int(math.Round(x[i]))
	}
	clampSum(sizes, total)
	return sizes
}

// distributeGreedy hands each item its maximum in order until the axis is
// exhausted. Kept as the fallback when the solver rejects the program.
func distributeGreedy(total int, mins, maxs []int) []int {
	sizes := make([]int, len(mins))
	remaining := total
	for i := range sizes {
		sizes[i] = mins[i]
		remaining -= mins[i]
	}
	for i := range sizes {
		if remaining <= 0 {
			break
		}
		extra := maxs[i] - sizes[i]
		if extra > remaining {
			extra = remaining
		}
		sizes[i] += extra
		remaining -= extra
	}
	return sizes
}

// clampSum trims rounding overshoot so the sizes never exceed the axis.
func clampSum(sizes []int, total int) {
	sum := 0
	for _, s := range sizes {
		sum += s
	}
	for i := len(sizes) - 1; i >= 0 && sum > total; i-- {
		over := sum - total
		if over > sizes[i] {
			over = sizes[i]
		}
		sizes[i] -= over
		sum -= over
	}
}
