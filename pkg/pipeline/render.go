package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/profilecluster/pkg/render/sink"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

// StyleFor returns the style registered under name.
func StyleFor(name string) (styles.Style, error) {
	if err := ValidateStyle(name); err != nil {
		return nil, err
	}
	if name == StyleRing {
		return styles.Flat{Stroke: "#FFFFFF"}, nil
	}
	return styles.Flat{}, nil
}

// Render generates output artifacts in the requested formats. idPrefix keeps
// SVG ids stable for a given scene; empty picks a random one.
func Render(ctx context.Context, scene sink.Scene, idPrefix string, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, err := StyleFor(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if idPrefix != "" {
		svgOpts = append(svgOpts, sink.WithIDPrefix(idPrefix))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(scene, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(scene, sink.WithJSONStyle(opts.Style))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, scene, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, scene, sink.WithPDFSVGOptions(svgOpts...))
		case FormatTerm:
			data = []byte(sink.RenderTerminal(scene, sink.WithCellsPerItem(opts.Columns)))
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
