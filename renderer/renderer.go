// Package renderer turns ledger data into markdown reports. It is a pure
// presentation layer: it never mutates the ledger and renders whatever it
// is given, so the command layer decides what to show and the renderer
// decides how it looks.
package renderer
