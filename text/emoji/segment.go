package emoji

import "strings"

// Run is a contiguous piece of text that is either plain or a single
// pictograph sequence. Start and End are byte offsets into the segmented
// string.
type Run struct {
	Text       string
	Pictograph bool
	Start, End int
}

// Visible returns the codepoints of the run that should be drawn.
// Text variation selectors are dropped; everything else is kept.
func (r Run) Visible() string {
	if !strings.ContainsRune(r.Text, TextVariation) {
		return r.Text
	}
	return strings.Map(func(c rune) rune {
		if c == TextVariation {
			return -1
		}
		return c
	}, r.Text)
}

// Segment splits text into plain and pictograph runs. Plain text between
// pictographs is kept together; each pictograph sequence becomes its own
// run, so adjacent pictographs are never merged. Concatenating the Text of
// the returned runs yields text exactly.
//
// Returns nil for empty text.
func Segment(text string) []Run {
	if text == "" {
		return nil
	}

	runes, offsets := decode(text)
	var runs []Run
	plainStart := -1

	flushPlain := func(end int) {
		if plainStart >= 0 {
			runs = append(runs, Run{Text: text[plainStart:end], Start: plainStart, End: end})
			plainStart = -1
		}
	}

	for i := 0; i < len(runes); {
		n := sequenceLen(runes[i:])
		if n == 0 {
			if plainStart < 0 {
				plainStart = offsets[i]
			}
			i++
			continue
		}
		flushPlain(offsets[i])
		start, end := offsets[i], offsets[i+n]
		runs = append(runs, Run{Text: text[start:end], Pictograph: true, Start: start, End: end})
		i += n
	}
	flushPlain(len(text))
	return runs
}

// decode returns the runes of text and the byte offset of each, with a
// trailing sentinel offset equal to len(text). Invalid bytes decode to
// utf8.RuneError but keep their true offsets.
func decode(text string) ([]rune, []int) {
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	return runes, append(offsets, len(text))
}

// sequenceLen returns the number of runes in the pictograph sequence at the
// start of runes, or 0 if runes does not start with a pictograph.
func sequenceLen(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	first := runes[0]
	if IsKeycapBase(first) {
		if len(runes) >= 3 && runes[1] == EmojiVariation && runes[2] == KeycapMark {
			return 3
		}
		return 0
	}
	if !IsPictograph(first) {
		return 0
	}

	n := 1
	for n < len(runes) {
		r := runes[n]
		switch {
		case IsZWJ(r):
			n++
			if n < len(runes) {
				n++
			}
		case IsSkinTone(r), IsVariationSelector(r):
			n++
		case n == 1 && IsRegionalIndicator(first) && IsRegionalIndicator(r):
			n++
		default:
			return n
		}
	}
	return n
}

// HasPictograph reports whether text contains any pictograph codepoint.
// It is cheaper than a full Segment call.
func HasPictograph(text string) bool {
	for _, r := range text {
		if IsPictograph(r) {
			return true
		}
	}
	return false
}

// Strip removes every pictograph sequence from text.
func Strip(text string) string {
	if !HasPictograph(text) {
		return text
	}
	var b strings.Builder
	for _, r := range Segment(text) {
		if !r.Pictograph {
			b.WriteString(r.Text)
		}
	}
	return b.String()
}

// Extract returns the pictograph sequences of text in order.
func Extract(text string) []string {
	var out []string
	for _, r := range Segment(text) {
		if r.Pictograph {
			out = append(out, r.Text)
		}
	}
	return out
}
