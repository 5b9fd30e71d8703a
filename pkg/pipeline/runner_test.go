package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/profilecluster/pkg/cache"
	"github.com/matzehuels/profilecluster/pkg/errors"
)

func TestLoadPlaceholder(t *testing.T) {
	r, err := Load(context.Background(), Options{Count: 3})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if r.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", r.ItemCount())
	}

	r, err = Load(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if r.ItemCount() != 8 {
		t.Errorf("default placeholder count = %d, want 8", r.ItemCount())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.toml")
	data := `
[cluster]
spacing = 4.0

[[profile]]
name = "Ada Lovelace"

[[profile]]
name = "Alan Turing"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(context.Background(), Options{Roster: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if r.ItemCount() != 2 || r.Cluster.Spacing != 4 {
		t.Errorf("Load() = %d profiles, spacing %v", r.ItemCount(), r.Cluster.Spacing)
	}

	_, err = Load(context.Background(), Options{Roster: filepath.Join(t.TempDir(), "missing.toml")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestRender(t *testing.T) {
	ros, _ := Load(context.Background(), Options{Count: 4})
	scene, err := Layout(ros, Options{Width: 200, Height: 40})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	artifacts, err := Render(context.Background(), scene, "pc-test", Options{
		Formats: []string{FormatSVG, FormatJSON, FormatTerm},
		Style:   StyleRing,
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	svg := string(artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, `id="pc-test-0"`) {
		t.Errorf("svg output unexpected:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke="#FFFFFF"`) {
		t.Error("ring style should stroke avatars")
	}
	if !bytes.Contains(artifacts[FormatJSON], []byte(`"style": "ring"`)) {
		t.Errorf("json output missing style:\n%s", artifacts[FormatJSON])
	}
	if len(artifacts[FormatTerm]) == 0 {
		t.Error("term output is empty")
	}

	if _, err := Render(context.Background(), scene, "", Options{Formats: []string{"gif"}}); err == nil {
		t.Error("Render() with unknown format should fail")
	}
}

func TestRunnerCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{Count: 12, Width: 200, Height: 40, Formats: []string{FormatSVG, FormatJSON}}
	ctx := context.Background()

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run cache info = %+v, want misses", first.CacheInfo)
	}
	if first.Stats.Profiles != 12 || first.Stats.Slots != 6 || first.Stats.Hidden != 7 {
		t.Errorf("stats = %+v", first.Stats)
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v, want hits", second.CacheInfo)
	}
	if first.SceneHash != second.SceneHash {
		t.Errorf("scene hash changed across cache round trip: %s vs %s", first.SceneHash, second.SceneHash)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from the rendered one")
	}

	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run cache info = %+v, want misses", third.CacheInfo)
	}
}

func TestRunnerDeterministicIDs(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{Count: 3, Formats: []string{FormatSVG}}

	a, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	b, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("same scene rendered to different svg")
	}
	if b.CacheInfo.LayoutHit || b.CacheInfo.RenderHit {
		t.Errorf("runner without a cache reported hits: %+v", b.CacheInfo)
	}
	if !bytes.Contains(a.Artifacts[FormatSVG], []byte(`id="`+idPrefix(a.SceneHash))) {
		t.Error("svg ids should derive from the scene hash")
	}
}

func TestRunnerHugeContainer(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{Count: 5, Width: 1e30, Height: 40, Formats: []string{FormatTerm, FormatJSON}}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.Slots != 5 || result.Stats.Hidden != 0 {
		t.Errorf("stats = %+v, want every profile shown", result.Stats)
	}
	if len(result.Artifacts[FormatTerm]) == 0 {
		t.Error("empty terminal output")
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{Formats: []string{"bmp"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want invalid format", err)
	}
}
