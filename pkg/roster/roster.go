package roster

import (
	"fmt"
	"strings"

	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/errors"
	"github.com/matzehuels/profilecluster/pkg/render/styles"
)

// DefaultPlaceholderCount is the size of a preview roster.
const DefaultPlaceholderCount = 8

// Profile is one person in the row.
type Profile struct {
	Name     string `toml:"name" json:"name"`
	Initials string `toml:"initials" json:"initials,omitempty"`
	Image    string `toml:"image" json:"image,omitempty"`
	Color    string `toml:"color" json:"color,omitempty"`
}

// DisplayInitials returns the explicit initials, or ones derived from the name.
func (p Profile) DisplayInitials() string {
	if p.Initials != "" {
		return p.Initials
	}
	return styles.Initials(p.Name)
}

// Roster is an ordered list of profiles plus the row settings for them.
type Roster struct {
	Title    string           `toml:"title" json:"title,omitempty"`
	Cluster  cluster.Settings `toml:"cluster" json:"cluster"`
	Profiles []Profile        `toml:"profile" json:"profiles"`
}

// New returns a roster of profiles with default settings.
func New(profiles ...Profile) *Roster {
	return &Roster{Cluster: cluster.DefaultSettings(), Profiles: profiles}
}

// ItemCount implements cluster.ItemSource.
func (r *Roster) ItemCount() int {
	if r == nil {
		return 0
	}
	return len(r.Profiles)
}

// Profile returns the profile at index i.
func (r *Roster) Profile(i int) (Profile, bool) {
	if r == nil || i < 0 || i >= len(r.Profiles) {
		return Profile{}, false
	}
	return r.Profiles[i], true
}

// Names returns the profile names in order.
func (r *Roster) Names() []string {
	names := make([]string, r.ItemCount())
	for i := range names {
		names[i] = r.Profiles[i].Name
	}
	return names
}

// Validate checks settings and every profile.
func (r *Roster) Validate() error {
	if err := r.Cluster.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRoster, err, "cluster settings")
	}
	if r.Cluster.ItemSize != nil && *r.Cluster.ItemSize < 0 {
		return errors.New(errors.ErrCodeInvalidRoster, "cluster settings: negative item_size")
	}
	for i, p := range r.Profiles {
		if err := p.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRoster, err, "profile %d", i+1)
		}
	}
	return nil
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Initials) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "name or initials required")
	}
	if p.Color != "" {
		if err := errors.ValidateColor(p.Color); err != nil {
			return err
		}
	}
	if p.Image != "" {
		if err := errors.ValidateURL(p.Image); err != nil {
			return err
		}
	}
	return nil
}

var placeholderNames = []string{
	"Ada Lovelace", "Grace Hopper", "Alan Turing", "Barbara Liskov",
	"Edsger Dijkstra", "Margaret Hamilton", "Donald Knuth", "Frances Allen",
}

// Placeholder returns a roster of n made-up profiles for previews.
func Placeholder(n int) *Roster {
	r := New()
	for i := range max(n, 0) {
		name := placeholderNames[i%len(placeholderNames)]
		if i >= len(placeholderNames) {
			name = fmt.Sprintf("%s %d", name, i/len(placeholderNames)+1)
		}
		r.Profiles = append(r.Profiles, Profile{Name: name})
	}
	return r
}
