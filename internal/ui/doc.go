// Package ui styles CLI output by meaning rather than by color.
//
//	fmt.Fprintf(out, "%s stored %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(name))
//
// Output is colored only on a capable terminal with NO_COLOR unset. Otherwise
// Code, Highlight and Muted fall back to `backticks`, 'quotes' and
// (parentheses); the rest print their text unchanged.
package ui
