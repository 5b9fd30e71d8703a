// Package render converts rendered avatar rows between output formats.
//
// # Overview
//
// SVG is produced by the [sink] subpackage using a [styles] style. This
// package turns that SVG into other formats:
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Both conversions shell out to rsvg-convert from librsvg. [Available]
// reports whether it is installed so callers can fail early.
//
// [sink]: github.com/matzehuels/profilecluster/pkg/render/sink
// [styles]: github.com/matzehuels/profilecluster/pkg/render/styles
package render
