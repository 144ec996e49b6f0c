package text

import "github.com/rivo/uniseg"

// Ellipsis is appended to truncated strings.
const Ellipsis = ".."

// Truncate shortens str on grapheme cluster boundaries so that it, plus
// Ellipsis, fits in maxWidth at the given size. Strings that already fit are
// returned unchanged. If not even the ellipsis fits, the result is empty.
func (s *Service) Truncate(str string, maxWidth float64, size int, bold bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ext := s.layout(str, size, bold); ext.Width <= maxWidth {
		return str
	}

	// byte offsets of every grapheme boundary after the first cluster
	var cuts []int
	g := uniseg.NewGraphemes(str)
	for g.Next() {
		_, to := g.Positions()
		cuts = append(cuts, to)
	}

	// longest prefix that fits, found by binary search over cluster counts
	lo, hi, best := 0, len(cuts)-1, -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if _, ext := s.layout(str[:cuts[mid]]+Ellipsis, size, bold); ext.Width <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if best >= 0 {
		return str[:cuts[best]] + Ellipsis
	}
	if _, ext := s.layout(Ellipsis, size, bold); ext.Width <= maxWidth {
		return Ellipsis
	}
	return ""
}
