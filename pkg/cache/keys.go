package cache

// Keyer derives cache keys from the inputs of each stage.
type Keyer interface {
	// LayoutKey keys a computed scene by roster content and layout options.
	LayoutKey(rosterHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys rendered output by scene content and render options.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change a computed scene.
type LayoutKeyOpts struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	ItemSize   *float64 `json:"item_size,omitempty"`
	Spacing    float64  `json:"spacing"`
	MaxVisible int      `json:"max_visible"`
	Alignment  string   `json:"alignment"`
	StartFrom  string   `json:"start_from"`
	Shadow     float64  `json:"shadow"`
}

// ArtifactKeyOpts are the options that change rendered output.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Style      string  `json:"style"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	Columns    int     `json:"columns,omitempty"`
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(rosterHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", rosterHash, opts)
}

func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
