// Package fade ramps one timeline's contribution to final animation
// output between 0 and 1 over a caller-specified duration.
//
// The package does not own a playback graph. It talks to the host's
// graph runtime through the narrow Director and Output capabilities, so
// any engine that can expose a weighted output node can be faded.
package fade

// Source is the upstream playable stream feeding an output. The fade
// package never inspects it; it only moves the binding between outputs.
type Source = any

// Target is the render or consumption target an output feeds.
type Target = any

// Output is one weighted output node of a playback graph.
type Output interface {
	// Valid reports whether the node still belongs to a live graph.
	Valid() bool
	// Target returns the bound render target, or nil when unbound.
	Target() Target
	Weight() float64
	SetWeight(w float64)
	// Source returns the bound upstream stream and its port index.
	Source() (Source, int)
	SetSource(src Source, port int)
	// ClearSource detaches the upstream stream, leaving the node unfed.
	ClearSource()
}

// Director is the external entity that owns and steps a playback graph
// over time. The host keeps the broader lifecycle (building, destroying,
// stepping playback); this package only observes validity, pauses and
// resumes playback, and rewires outputs.
type Director interface {
	// GraphValid reports whether the director currently holds a live graph.
	GraphValid() bool
	// RebuildGraph (re)builds the graph and leaves it paused, so it is in
	// a valid, deterministic state with no unintended playback.
	RebuildGraph()
	Resume()
	Pause()
	// PrimaryOutput returns the graph's primary weighted output, or nil
	// when the graph has none.
	PrimaryOutput() Output
	// NewOutput creates a weighted output bound to target, or nil if the
	// graph cannot host one.
	NewOutput(target Target) Output
}
