package text

// Fit returns the largest pixel size in [minSize, maxSize] at which str fits
// inside a w x h box, or minSize when nothing fits.
func (s *Service) Fit(str string, w, h float64, minSize, maxSize int, bold bool) int {
	if minSize > maxSize {
		minSize, maxSize = maxSize, minSize
	}
	minSize = max(minSize, 1)
	if str == "" || w <= 0 || h <= 0 {
		return minSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	best := minSize
	lo, hi := minSize, maxSize
	for lo <= hi {
		mid := lo + (hi-lo)/2
		_, ext := s.layout(str, mid, bold)
		if ext.Width <= w && ext.Height() <= h {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}
