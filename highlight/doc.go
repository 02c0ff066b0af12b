// Package highlight marks regular expression matches inside text.
//
// [Highlight] wraps every match of a [regexp.Regexp] in a pair of markers,
// "<b>" and "</b>" by default, and copies everything else through
// unchanged:
//
//	re := regexp.MustCompileFlags(`is`, regexp.Global|regexp.IgnoreCase)
//	highlight.Highlight("Is this This?", re)
//	// "<b>Is</b> th<b>is</b> Th<b>is</b>?"
//
// Matches are visited left to right without overlapping. Patterns compiled
// without [regexp.Global] only mark their first match. [HighlightSubmatch]
// marks a single capture group in place of each whole match, and [Replace]
// substitutes a replacement template instead of markers.
//
// Every function is pure: the input is never modified and identical inputs
// always produce identical output.
package highlight
