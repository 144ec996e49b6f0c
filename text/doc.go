// Package text loads fonts and measures and draws single-line strings that
// mix plain text with pictographs.
//
// A Service owns the primary regular and bold fonts, an ordered list of
// pictograph fonts, and a cache of faces keyed by pixel size and weight.
// Strings are split with package emoji; plain runs are drawn with the
// primary face through golang.org/x/image/font, pictograph runs are shaped
// with go-text's HarfBuzz port and drawn from the first pictograph font
// that covers them. Bitmap glyphs (CBDT, sbix) are scaled into place,
// outline and color glyphs are filled from their outlines.
//
// Font loading never fails: configured paths are tried first, then common
// system locations, then the embedded Go fonts.
//
//	svc := text.NewService()
//	ext := svc.Measure("CPU \U0001F525 42%", 24, true)
//	svc.Draw(img, "CPU \U0001F525 42%", 120, 60, 24, true, col, text.Centered)
//
// A Service is safe for concurrent use.
package text
