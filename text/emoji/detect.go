package emoji

import "unicode"

// Codepoints with special meaning inside pictograph sequences.
const (
	ZWJ             = '\u200D'
	TextVariation   = '\uFE0E'
	EmojiVariation  = '\uFE0F'
	KeycapMark      = '\u20E3'
	regionalFirst   = 0x1F1E6
	regionalLast    = 0x1F1FF
	skinToneFirst   = 0x1F3FB
	skinToneLast    = 0x1F3FF
	privateUseFirst = 0xE000
	privateUseLast  = 0xF8FF
)

// pictographs lists codepoints that need the fallback pictograph font:
// symbol and pictograph blocks, emoticons, transport and map symbols,
// dingbats, regional indicators, scattered emoji-capable symbols and the
// BMP private use area used by icon fonts.
var pictographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x231A, Hi: 0x231B, Stride: 1}, // watch, hourglass
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1}, // media controls
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1},  // small squares
		{Lo: 0x25B6, Hi: 0x25C0, Stride: 10}, // play, reverse
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B55, Stride: 5},  // star, circle
		{Lo: 0x3030, Hi: 0x303D, Stride: 13}, // wavy dash, part alternation mark
		{Lo: 0x3297, Hi: 0x3299, Stride: 2},  // circled ideographs
		{Lo: privateUseFirst, Hi: privateUseLast, Stride: 1},
		{Lo: 0xFE0F, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F004, Hi: 0x1F004, Stride: 1}, // mahjong red dragon
		{Lo: 0x1F0CF, Hi: 0x1F0CF, Stride: 1}, // joker
		{Lo: 0x1F170, Hi: 0x1F171, Stride: 1},
		{Lo: 0x1F17E, Hi: 0x1F17F, Stride: 1},
		{Lo: 0x1F18E, Hi: 0x1F18E, Stride: 1},
		{Lo: 0x1F191, Hi: 0x1F19A, Stride: 1},
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F201, Hi: 0x1F202, Stride: 1},
		{Lo: 0x1F21A, Hi: 0x1F21A, Stride: 1},
		{Lo: 0x1F22F, Hi: 0x1F22F, Stride: 1},
		{Lo: 0x1F232, Hi: 0x1F23A, Stride: 1},
		{Lo: 0x1F250, Hi: 0x1F251, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F9FF, Stride: 1}, // pictographs, emoticons, transport
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1},
	},
}

// IsPictograph reports whether r starts a pictograph sequence.
func IsPictograph(r rune) bool {
	return unicode.Is(pictographs, r)
}

// IsSkinTone reports whether r is a Fitzpatrick skin tone modifier.
func IsSkinTone(r rune) bool {
	return r >= skinToneFirst && r <= skinToneLast
}

// IsZWJ reports whether r is the zero width joiner.
func IsZWJ(r rune) bool {
	return r == ZWJ
}

// IsRegionalIndicator reports whether r is a regional indicator letter.
// Two of them form a flag.
func IsRegionalIndicator(r rune) bool {
	return r >= regionalFirst && r <= regionalLast
}

// IsVariationSelector reports whether r is U+FE0E or U+FE0F.
func IsVariationSelector(r rune) bool {
	return r == TextVariation || r == EmojiVariation
}

// IsKeycapBase reports whether r can start a keycap sequence.
func IsKeycapBase(r rune) bool {
	return r == '#' || r == '*' || (r >= '0' && r <= '9')
}

// IsPrivateUse reports whether r lies in the BMP private use area.
func IsPrivateUse(r rune) bool {
	return r >= privateUseFirst && r <= privateUseLast
}
