package curve

import (
	"math"
	"strings"
)

// Candle intervals in seconds.
const (
	Hour      = 3600.0
	FourHours = 4 * Hour
	Day       = 24 * Hour
)

// Sample is one timestamped value of a history series. T is in seconds.
type Sample struct {
	T, V float64
}

// Candle is an open-high-low-close summary of one time bucket.
type Candle struct {
	Open, High, Low, Close float64
}

// Bullish reports whether the candle closed at or above its open.
func (c Candle) Bullish() bool {
	return c.Close >= c.Open
}

// Interval maps a candle interval name ("1 hour", "4 hours", "1 day") to
// seconds. Unknown names map to FourHours.
func Interval(name string) float64 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "1 hour", "1h", "hour":
		return Hour
	case "1 day", "1d", "day":
		return Day
	default:
		return FourHours
	}
}

// AggregateOHLC buckets time ordered samples into count candles of interval
// seconds ending at the last sample.
//
// The window starts at last.T - count*interval. Samples before the window
// are not bucketed but seed the close carried into leading empty buckets.
// Every empty bucket becomes a flat candle at the most recent known close.
// The result has exactly count candles for non-empty input, and is nil when
// samples is empty or interval or count is not positive.
func AggregateOHLC(samples []Sample, interval float64, count int) []Candle {
	if len(samples) == 0 || interval <= 0 || count <= 0 {
		return nil
	}

	start := samples[len(samples)-1].T - float64(count)*interval
	buckets := make([][]float64, count)
	for _, s := range samples {
		if s.T < start {
			continue
		}
		idx := int(math.Floor((s.T - start) / interval))
		idx = min(max(idx, 0), count-1)
		buckets[idx] = append(buckets[idx], s.V)
	}

	// The last sample always lands in the window, so some bucket is
	// populated and lastClose is always seeded here.
	var lastClose float64
	for _, b := range buckets {
		if len(b) > 0 {
			lastClose = b[0]
			break
		}
	}
	for _, s := range samples {
		if s.T >= start {
			break
		}
		lastClose = s.V
	}

	candles := make([]Candle, count)
	for i, b := range buckets {
		if len(b) == 0 {
			candles[i] = Candle{lastClose, lastClose, lastClose, lastClose}
			continue
		}
		c := Candle{Open: b[0], High: b[0], Low: b[0], Close: b[len(b)-1]}
		for _, v := range b[1:] {
			c.High = max(c.High, v)
			c.Low = min(c.Low, v)
		}
		candles[i] = c
		lastClose = c.Close
	}
	return candles
}
