// Package config holds the compile-time sizing constants shared by the
// screen buffer, parser, and renderer — the same role term_config.h plays
// in the original firmware this module is modeled on.
package config

const (
	// DisplayW and DisplayH are the e-ink panel's pixel dimensions.
	DisplayW = 800
	DisplayH = 480

	// FontW and FontH are the glyph cell size in pixels.
	FontW = 10
	FontH = 20

	// OffsetX is the horizontal margin reserved to avoid bezel clipping.
	OffsetX = 10

	// Cols and Rows size the character grid. Cols leaves a matching margin
	// on the right: OffsetX + Cols*FontW = DisplayW - OffsetX.
	Cols = (DisplayW - OffsetX*2) / FontW // 78
	Rows = DisplayH / FontH               // 24

	// TabWidth is the column stride of a horizontal tab stop.
	TabWidth = 8

	// DirtyRowsPartialMax is the largest dirty-row count that still uses a
	// windowed partial refresh; above it the renderer falls back to a
	// full-panel fast refresh.
	DirtyRowsPartialMax = 5

	// FullRefreshInterval is the number of fast refreshes between forced
	// full refreshes, which clear e-ink ghosting.
	FullRefreshInterval = 20

	// MinRefreshIntervalMS is the minimum time between display refreshes,
	// enforced by the top-level loop rather than the renderer.
	MinRefreshIntervalMS = 300
)
