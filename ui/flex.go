package ui

// item is one child of a Row or Column, in main/cross axis terms.
type item struct {
	node        Node
	main, cross int
	spacer      bool
	weight      int // share of the free space for spacers, 0 means 1
	min         int // lower bound of a spacer when the free space allows it
}

// slot is the resolved box of an item, relative to the inner box.
type slot struct {
	main, mainSize   int
	cross, crossSize int
}

// flex resolves the main and cross axis boxes of items inside an inner box
// of size (inner, innerCross). Every resolved box lies inside the inner
// box and has a non-negative size.
func flex(items []item, inner, innerCross, gap int, align Align, justify Justify) []slot {
	n := len(items)
	if n == 0 {
		return nil
	}
	inner, innerCross = max(inner, 0), max(innerCross, 0)
	gap = max(gap, 0)
	if n > 1 && gap*(n-1) > inner {
		gap = inner / (n - 1)
	}
	avail := inner - gap*(n-1)

	sizes := make([]int, n)
	fixed, weights := 0, 0
	for i, it := range items {
		if it.spacer {
			weights += it.share()
			continue
		}
		sizes[i] = max(it.main, 0)
		fixed += sizes[i]
	}

	if fixed > avail {
		// overflow: shrink proportionally, spacers collapse
		for i := range sizes {
			sizes[i] = sizes[i] * avail / fixed
		}
	} else if weights > 0 {
		spread(items, sizes, avail-fixed, weights)
	}

	used := 0
	for _, s := range sizes {
		used += s
	}
	free := max(avail-used, 0)

	slots := make([]slot, n)
	pos := 0
	for i, it := range items {
		var offset int
		switch justify {
		case JustifyCenter:
			offset = free / 2
		case JustifyEnd:
			offset = free
		case JustifySpaceBetween:
			if n > 1 {
				offset = i * free / (n - 1)
			}
		case JustifySpaceAround:
			offset = (2*i + 1) * free / (2 * n)
		}

		s := slot{main: pos + offset, mainSize: sizes[i]}
		s.cross, s.crossSize = crossBox(it, innerCross, align)
		slots[i] = s
		pos += sizes[i] + gap
	}
	return slots
}

// spread divides free among the spacers by weight. When the minimum sizes
// of all spacers fit in free, a spacer whose share falls below its minimum
// is pinned there and the rest is divided again among the others.
func spread(items []item, sizes []int, free, weights int) {
	mins := 0
	for _, it := range items {
		if it.spacer {
			mins += max(it.min, 0)
		}
	}
	pinned := make([]bool, len(items))
	if mins <= free {
		for changed := true; changed; {
			changed = false
			for i, it := range items {
				if !it.spacer || pinned[i] || weights == 0 {
					continue
				}
				if free*it.share()/weights < it.min {
					pinned[i], sizes[i] = true, it.min
					free -= it.min
					weights -= it.share()
					changed = true
				}
			}
		}
	}
	for i, it := range items {
		if it.spacer && !pinned[i] && weights > 0 {
			sizes[i] = free * it.share() / weights
		}
	}
}

func (it item) share() int {
	return max(it.weight, 1)
}

// crossBox positions an item on the cross axis.
func crossBox(it item, innerCross int, align Align) (pos, size int) {
	if it.spacer || align == AlignStretch {
		return 0, innerCross
	}
	size = min(max(it.cross, 0), innerCross)
	switch align {
	case AlignStart:
		return 0, size
	case AlignEnd:
		return innerCross - size, size
	default:
		return (innerCross - size) / 2, size
	}
}
