// Package emoji classifies pictograph codepoints and splits text into plain
// and pictograph segments.
//
// A pictograph segment is drawn atomically with a fallback symbol font. It
// covers multi-codepoint sequences:
//
//   - skin tone modifiers (U+1F3FB - U+1F3FF)
//   - ZWJ (U+200D) sequences such as family and profession emoji
//   - variation selectors U+FE0F (emoji style) and U+FE0E (text style)
//   - flag pairs of regional indicators
//   - keycaps: digit, '#' or '*' followed by U+FE0F U+20E3
//
// Segmentation is lossless: joining the Text of every segment reproduces the
// input byte for byte, including invalid UTF-8. Use Segment.Visible for the
// codepoints that should actually be drawn.
//
//	for _, seg := range emoji.Segment("Hello 👋🏽 World") {
//	    if seg.Pictograph {
//	        // draw seg.Visible() with the pictograph font
//	    }
//	}
package emoji
