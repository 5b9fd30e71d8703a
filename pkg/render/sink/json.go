package sink

import (
	"encoding/json"

	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/errors"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name in the output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width        float64           `json:"width"`
	Height       float64           `json:"height"`
	ItemSize     float64           `json:"item_size"`
	ContentWidth float64           `json:"content_width"`
	ItemCount    int               `json:"item_count"`
	VisibleCount int               `json:"visible_count"`
	Hidden       int               `json:"hidden,omitempty"`
	Shadow       float64           `json:"shadow,omitempty"`
	Alignment    cluster.Alignment `json:"alignment"`
	StartFrom    cluster.Direction `json:"start_from"`
	Style        string            `json:"style,omitempty"`
	Items        []jsonItem        `json:"items"`
}

type jsonItem struct {
	Kind     cluster.SlotKind `json:"kind"`
	Index    int              `json:"index"`
	Position int              `json:"position"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	Size     float64          `json:"size"`
	Mirrored bool             `json:"mirrored,omitempty"`
	Chip     styles.Chip      `json:"chip"`
}

// RenderJSON exports the scene as a pretty-printed JSON document. Items keep
// their draw order.
func RenderJSON(s Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:        s.Width,
		Height:       s.Height,
		ItemSize:     s.ItemSize,
		ContentWidth: s.ContentWidth,
		ItemCount:    s.ItemCount,
		VisibleCount: s.VisibleCount,
		Hidden:       s.Hidden(),
		Shadow:       s.Shadow,
		Alignment:    s.Alignment,
		StartFrom:    s.StartFrom,
		Style:        r.style,
		Items:        make([]jsonItem, len(s.Items)),
	}
	for i, it := range s.Items {
		out.Items[i] = jsonItem{
			Kind:     it.Slot.Kind,
			Index:    it.Slot.Index,
			Position: it.Position,
			X:        it.X,
			Y:        it.Y,
			Size:     it.Width,
			Mirrored: it.Mirrored,
			Chip:     it.Visual,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON rebuilds a scene from the output of [RenderJSON].
func ReadJSON(data []byte) (Scene, error) {
	var in jsonOutput
	if err := json.Unmarshal(data, &in); err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout json")
	}

	s := Scene{
		Width:        in.Width,
		Height:       in.Height,
		ItemSize:     in.ItemSize,
		ContentWidth: in.ContentWidth,
		ItemCount:    in.ItemCount,
		VisibleCount: in.VisibleCount,
		Shadow:       in.Shadow,
		Alignment:    in.Alignment,
		StartFrom:    in.StartFrom,
		Items:        make([]Item, len(in.Items)),
	}
	for i, ji := range in.Items {
		if ji.Size < 0 {
			return Scene{}, errors.New(errors.ErrCodeInvalidInput, "item %d: negative size", i)
		}
		s.Items[i] = Item{
			Frame: cluster.Frame{
				Slot:     cluster.Slot{Kind: ji.Kind, Index: ji.Index},
				Position: ji.Position,
				X:        ji.X,
				Y:        ji.Y,
				Width:    ji.Size,
				Height:   ji.Size,
				Mirrored: ji.Mirrored,
			},
			Visual: ji.Chip,
		}
	}
	return s, nil
}
