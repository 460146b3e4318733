package versionstring

import (
	"os"
	"path/filepath"
	"sync"
)

// Descriptor is one component's build provenance. Instances are written by the
// generator into each component's generated file and never modified afterwards.
type Descriptor struct {
	// Component distinguishes entries in a multi-component chain. When empty
	// the report falls back to the running program's name.
	Component string `json:"component"`

	// Version is the human-supplied semantic version, passed through verbatim.
	Version string `json:"version"`

	// BuildNumber is the number of commits between the nearest reachable
	// annotated marker tag and the commit being built. Zero when building
	// exactly at the marker or when no marker is reachable.
	BuildNumber int `json:"build_number"`

	// BuildDate is the committer timestamp of the built commit, normalized to
	// UTC in a fixed sortable layout ("2006-01-02T15:04:05Z").
	BuildDate string `json:"build_date"`

	// Commit is the short hash of the built commit. Empty in degraded builds
	// (no repository, no git).
	Commit string `json:"commit"`

	// Dirty reports whether tracked files differed from the built commit at
	// generation time. Untracked files do not count.
	Dirty bool `json:"dirty"`
}

// Name returns the component name, falling back to the program name when the
// descriptor does not carry one.
func (d Descriptor) Name() string {
	if d.Component != "" {
		return d.Component
	}
	return filepath.Base(os.Args[0])
}

// Registry is an append-only ordered collection of descriptors. The expected
// call pattern is single-threaded package initialization, but mutation is
// guarded anyway so that unusual initializer/thread interleavings stay safe.
type Registry struct {
	mu      sync.Mutex
	entries []Descriptor
}

// NewRegistry returns an empty registry. Most callers want Default instead;
// explicit registries exist for tests and embedding scenarios.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends d and returns its position in the chain.
func (r *Registry) Register(d Descriptor) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, d)
	return len(r.entries) - 1
}

// All returns a copy of every registered descriptor in registration order.
func (r *Registry) All() []Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that generated bootstrap code
// registers into.
func Default() *Registry {
	return defaultRegistry
}

// Register adds d to the default registry. Generated files call this from a
// package-level variable initializer so registration completes before main.
func Register(d Descriptor) int {
	return Default().Register(d)
}
