// Package ui provides semantic text formatting for CLI output.
//
// Formatters pair a color (for capable terminals) with a plain-text
// decoration (for NO_COLOR, dumb terminals, or redirected output), so
// messages stay readable either way:
//
//	ui.Highlight.Sprint("DBPASS")   // cyan, or 'DBPASS' without color
//	ui.Path.Sprint(".env")          // yellow, or bare path without color
//
// Color is suppressed when the NO_COLOR environment variable is set or
// when fatih/color detects a non-terminal destination.
package ui
