// Package pipeline provides the load → layout → render pipeline for avatar
// rows.
//
// The CLI and any other front end share this package so that defaults,
// validation and caching behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a roster file, or build placeholder profiles
//  2. Layout: compute slots and place them in the container
//  3. Render: generate output in various formats (SVG, PNG, PDF, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.Options{
//	    Roster:  "team.toml",
//	    Width:   240,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/profilecluster/pkg/cache"
	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/errors"
	"github.com/matzehuels/profilecluster/pkg/render/sink"
	"github.com/matzehuels/profilecluster/pkg/roster"
)

// Default values shared by every front end.
const (
	// DefaultWidth is the default container width in pixels.
	DefaultWidth = 240.0

	// DefaultHeight is the default container height, which is also the
	// default avatar size.
	DefaultHeight = 40.0

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultColumns is how many terminal cells one slot spans.
	DefaultColumns = 4

	// DefaultStyle is the default visual style.
	DefaultStyle = StyleFlat
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatTerm = "term"
)

// Style names.
const (
	StyleFlat = "flat"
	StyleRing = "ring"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatTerm: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleFlat: true,
	StyleRing: true,
}

// Options contains all configuration for the pipeline. Layout fields left
// unset fall back to the roster's [cluster] settings.
type Options struct {
	// Load options
	Roster string `json:"roster,omitempty"` // Roster file; empty uses placeholders
	Count  int    `json:"count,omitempty"`  // Placeholder profile count

	// Layout options
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	ItemSize   *float64 `json:"item_size,omitempty"`
	Spacing    *float64 `json:"spacing,omitempty"`
	MaxVisible *int     `json:"max_visible,omitempty"`
	Alignment  string   `json:"alignment,omitempty"`
	StartFrom  string   `json:"start_from,omitempty"`
	Shadow     *float64 `json:"shadow,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Columns    int      `json:"columns,omitempty"`

	// Refresh skips cache reads.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Roster     *roster.Roster
	RosterHash string
	Scene      sink.Scene
	SceneHash  string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Profiles   int
	Slots      int
	Hidden     int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(sortedKeys(ValidFormats), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", style, strings.Join(sortedKeys(ValidStyles), ", "))
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults checks every field and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for loading and layout.
func (o *Options) SetLayoutDefaults() {
	if o.Roster == "" && o.Count == 0 {
		o.Count = roster.DefaultPlaceholderCount
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for loading and layout.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Count < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "count must not be negative")
	}
	if !finite(o.Width) || !finite(o.Height) {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must be finite")
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and height must not be negative")
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"item size", o.ItemSize}, {"spacing", o.Spacing}, {"shadow", o.Shadow}} {
		if f.v != nil && !finite(*f.v) {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be finite", f.name)
		}
	}
	if o.ItemSize != nil && *o.ItemSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "item size must not be negative")
	}
	if o.MaxVisible != nil && *o.MaxVisible < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max visible must not be negative")
	}
	if o.Alignment != "" {
		if _, err := cluster.ParseAlignment(o.Alignment); err != nil {
			return err
		}
	}
	if o.StartFrom != "" {
		if _, err := cluster.ParseDirection(o.StartFrom); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	if o.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "columns must be positive")
	}
	if o.Background != "" {
		if err := errors.ValidateColor(o.Background); err != nil {
			return err
		}
	}
	return nil
}

// Settings merges the roster's settings with the options that were set
// explicitly. Options win.
func (o *Options) Settings(r *roster.Roster) (cluster.Settings, error) {
	s := cluster.DefaultSettings()
	if r != nil {
		s = r.Cluster
	}
	if o.ItemSize != nil {
		s.ItemSize = cluster.Size(*o.ItemSize)
	}
	if o.Spacing != nil {
		s.Spacing = *o.Spacing
	}
	if o.MaxVisible != nil {
		s.MaxVisible = *o.MaxVisible
	}
	if o.Shadow != nil {
		s.Shadow = *o.Shadow
	}
	if o.Alignment != "" {
		a, err := cluster.ParseAlignment(o.Alignment)
		if err != nil {
			return cluster.Settings{}, err
		}
		s.Alignment = a
	}
	if o.StartFrom != "" {
		d, err := cluster.ParseDirection(o.StartFrom)
		if err != nil {
			return cluster.Settings{}, err
		}
		s.StartFrom = d
	}
	return s, s.Validate()
}

// LayoutKeyOpts returns cache key options for the resolved settings.
func (o *Options) LayoutKeyOpts(s cluster.Settings) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:      o.Width,
		Height:     o.Height,
		ItemSize:   s.ItemSize,
		Spacing:    s.Spacing,
		MaxVisible: s.MaxVisible,
		Alignment:  s.Alignment.String(),
		StartFrom:  s.StartFrom.String(),
		Shadow:     s.Shadow,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Style: o.Style}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatTerm:
		k.Columns = o.Columns
	}
	if format != FormatJSON && format != FormatTerm {
		k.Background = o.Background
	}
	return k
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
