// Package report renders previews, performed actions and grouping results
// as terminal tables.
package report
