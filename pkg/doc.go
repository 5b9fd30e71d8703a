// Package pkg holds the libraries behind profilecluster.
//
// # Overview
//
// profilecluster lays out a horizontal row of avatars with a fixed size and
// spacing. When the row has room for fewer avatars than there are profiles,
// the last slot turns into a "+N" badge for the rest. The pkg directory is
// organized as:
//
//  1. [cluster] - the slot engine: capacity, overflow folding, placement
//  2. [roster] - profiles and row settings read from TOML or JSON
//  3. [render] - styles and sinks (SVG, PNG, PDF, JSON, terminal)
//  4. [pipeline] - orchestration (load → layout → render) with caching
//  5. [cache] - local storage for layouts and artifacts
//
// # Architecture
//
//	roster file or placeholders
//	         ↓
//	    [roster] package (profiles + [cluster] settings)
//	         ↓
//	    [cluster] package (slots, frames)
//	         ↓
//	    [render/sink] package (SVG/PNG/PDF/JSON/terminal)
//
// # Quick Start
//
//	cfg, err := cluster.NewLayoutConfig(240, 40, len(names), cluster.WithSpacing(-8))
//	if err != nil {
//	    return err
//	}
//	slots, contentWidth := cluster.ComputeSlots(cfg)
//
// Front ends that want files instead use [pipeline.Runner].
//
// [cluster]: github.com/matzehuels/profilecluster/pkg/cluster
// [roster]: github.com/matzehuels/profilecluster/pkg/roster
// [render]: github.com/matzehuels/profilecluster/pkg/render
// [pipeline]: github.com/matzehuels/profilecluster/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/profilecluster/pkg/pipeline#Runner
// [cache]: github.com/matzehuels/profilecluster/pkg/cache
package pkg
