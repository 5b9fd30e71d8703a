// Package styles defines how avatar rows are drawn as SVG.
//
// # Overview
//
// A [Style] turns positioned [Shape] values into SVG markup. The package
// provides:
//
//   - [Style]: the interface every style implements
//   - [Flat]: circular avatars with solid fills and a "+N" badge
//   - [Chip]: the per-slot render handle produced by the pipeline
//
// # The Style Interface
//
// Styles write directly into a bytes.Buffer owned by the sink:
//
//   - RenderDefs: the <defs> section (clip paths, shadow filter)
//   - RenderAvatar: one avatar circle with its image or initials
//   - RenderOverflow: the badge folding the hidden items
//
// Usage:
//
//	svg := sink.RenderSVG(scene, sink.WithStyle(styles.Flat{}))
//
// # Palette
//
// Profiles without a color of their own get [AvatarColor] by index, which
// cycles through three pastel fills. The badge always uses [BadgeFill].
package styles
