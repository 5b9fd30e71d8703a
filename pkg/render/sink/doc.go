// Package sink provides output format renderers for avatar rows.
//
// # Overview
//
// A "sink" transforms a laid out [Scene] into a final output format:
//
//   - SVG: standalone vector image
//   - JSON: scene export for external tools and re-rendering
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//   - Terminal: a single line of colored cells
//
// # Scenes
//
// A [Scene] is built by the pipeline from a slot computation: every item
// pairs a [cluster.Frame] with the [styles.Chip] rendered for its slot.
// Items are kept in draw order, so overlapping avatars stack the same way
// in every sink.
//
// # SVG Output
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithStyle(styles.Flat{}),
//	    sink.WithShadow(2),
//	)
//
// Element ids are prefixed with a random value unless [WithIDPrefix] is
// given, so several rows can be embedded in one page.
//
// # JSON Output
//
// [RenderJSON] writes the scene with its slots, geometry and chips.
// [ReadJSON] reads it back so a saved layout can be rendered again in any
// other format.
//
// [cluster.Frame]: github.com/matzehuels/profilecluster/pkg/cluster#Frame
// [styles.Chip]: github.com/matzehuels/profilecluster/pkg/render/styles#Chip
package sink
