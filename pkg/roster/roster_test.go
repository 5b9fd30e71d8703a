package roster

import (
	"testing"

	"github.com/matzehuels/profilecluster/pkg/cluster"
	"github.com/matzehuels/profilecluster/pkg/errors"
)

func TestPlaceholder(t *testing.T) {
	r := Placeholder(DefaultPlaceholderCount)
	if r.ItemCount() != 8 {
		t.Fatalf("ItemCount() = %d, want 8", r.ItemCount())
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if r.Cluster.Spacing != cluster.DefaultSpacing {
		t.Errorf("Spacing = %v, want default", r.Cluster.Spacing)
	}

	big := Placeholder(10)
	seen := map[string]bool{}
	for _, name := range big.Names() {
		if seen[name] {
			t.Errorf("duplicate placeholder name %q", name)
		}
		seen[name] = true
	}

	if Placeholder(-3).ItemCount() != 0 {
		t.Error("Placeholder(-3) should be empty")
	}
}

func TestNilRoster(t *testing.T) {
	var r *Roster
	if r.ItemCount() != 0 {
		t.Error("nil roster should have no items")
	}
	if _, ok := r.Profile(0); ok {
		t.Error("Profile(0) on nil roster should fail")
	}
}

func TestProfileAccess(t *testing.T) {
	r := New(Profile{Name: "Ada Lovelace"}, Profile{Name: "Grace Hopper", Initials: "gh"})
	p, ok := r.Profile(1)
	if !ok || p.Name != "Grace Hopper" {
		t.Fatalf("Profile(1) = %+v, %v", p, ok)
	}
	if _, ok := r.Profile(2); ok {
		t.Error("Profile(2) should be out of range")
	}
	if got := r.Profiles[0].DisplayInitials(); got != "AL" {
		t.Errorf("DisplayInitials() = %q, want AL", got)
	}
	if got := p.DisplayInitials(); got != "gh" {
		t.Errorf("explicit initials = %q, want gh", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		roster  *Roster
		wantErr bool
	}{
		{"valid", New(Profile{Name: "a", Color: "#fff", Image: "https://example.com/a.png"}), false},
		{"initials only", New(Profile{Initials: "XY"}), false},
		{"empty profile", New(Profile{Name: "  "}), true},
		{"bad color", New(Profile{Name: "a", Color: "red"}), true},
		{"bad image", New(Profile{Name: "a", Image: "ftp://x"}), true},
		{"bad alignment", &Roster{Cluster: cluster.Settings{Alignment: cluster.Alignment(9)}}, true},
		{"negative item size", &Roster{Cluster: cluster.Settings{ItemSize: cluster.Size(-1)}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.roster.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidRoster) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidRoster)
			}
		})
	}
}
