package sink

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	prefix     string
	shadow     *float64
	background string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithIDPrefix(p string) SVGOption    { return func(r *svgRenderer) { r.prefix = p } }
func WithShadow(level float64) SVGOption { return func(r *svgRenderer) { r.shadow = &level } }
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG draws the scene as a standalone SVG document. Items outside the
// container are clipped by the viewport.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	shadow := s.Shadow
	if r.shadow != nil {
		shadow = *r.shadow
	}

	shapes := make([]styles.Shape, len(s.Items))
	var clips []styles.Shape
	for i, it := range s.Items {
		shapes[i] = shapeFor(r.prefix, i, it)
		if shadow != 0 {
			shapes[i].Filter = styles.ShadowID(r.prefix)
		}
		if !it.Visual.Overflow && it.Visual.Image != "" {
			clips = append(clips, shapes[i])
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" overflow="hidden">`+"\n",
		s.Width, s.Height, s.Width, s.Height)

	r.style.RenderDefs(&buf, styles.Defs{Prefix: r.prefix, Shadow: shadow, Clips: clips})
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.EscapeXML(r.background))
	}
	for _, sh := range shapes {
		if sh.Overflow {
			r.style.RenderOverflow(&buf, sh)
			continue
		}
		r.style.RenderAvatar(&buf, sh)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Flat{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.prefix == "" {
		r.prefix = "pc-" + uuid.NewString()[:8]
	}
	return r
}

func itemID(prefix string, pos int) string {
	return fmt.Sprintf("%s-%d", prefix, pos)
}
