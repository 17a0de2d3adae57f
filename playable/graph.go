// Package playable is a minimal in-memory playback-graph runtime: a
// director owns one graph whose source stream feeds any number of
// weighted outputs. It implements the capabilities the fade package
// consumes, standing in for an engine's animation graph.
package playable

// Stream is the animation source a graph produces. Outputs consume one
// lane of it, selected by port.
type Stream struct {
	Clip string
}

// Graph is one live node graph: a single source stream plus its
// weighted outputs. Destroying the graph invalidates every node in it.
type Graph struct {
	valid   bool
	stream  *Stream
	outputs []*Output
}

func newGraph(clip string, target any) *Graph {
	g := &Graph{valid: true, stream: &Stream{Clip: clip}}
	out := &Output{graph: g, target: target, weight: 1, source: g.stream}
	g.outputs = append(g.outputs, out)
	return g
}

// Valid reports whether the graph is still live.
func (g *Graph) Valid() bool { return g != nil && g.valid }

// Destroy tears the graph down, invalidating all of its outputs.
func (g *Graph) Destroy() {
	if g == nil {
		return
	}
	g.valid = false
}

// Stream returns the graph's source stream.
func (g *Graph) Stream() *Stream {
	if g == nil {
		return nil
	}
	return g.stream
}

// Outputs returns the graph's weighted outputs in creation order.
func (g *Graph) Outputs() []*Output {
	if g == nil {
		return nil
	}
	return g.outputs
}

// Output is a weighted output node: it feeds its bound stream lane to a
// target, scaled by its blend weight.
type Output struct {
	graph  *Graph
	target any
	weight float64
	source any
	port   int
}

// Valid reports whether the output still belongs to a live graph.
func (o *Output) Valid() bool { return o != nil && o.graph.Valid() }

// Target returns the bound render target, or nil when unbound.
func (o *Output) Target() any {
	if o == nil {
		return nil
	}
	return o.target
}

// Weight returns the output's blend weight.
func (o *Output) Weight() float64 {
	if o == nil {
		return 0
	}
	return o.weight
}

// SetWeight sets the output's blend weight.
func (o *Output) SetWeight(w float64) {
	if o == nil {
		return
	}
	o.weight = w
}

// Source returns the bound upstream stream and its port index.
func (o *Output) Source() (any, int) {
	if o == nil {
		return nil, 0
	}
	return o.source, o.port
}

// SetSource binds an upstream stream lane to this output.
func (o *Output) SetSource(src any, port int) {
	if o == nil {
		return
	}
	o.source = src
	o.port = port
}

// ClearSource detaches the upstream stream, leaving the node unfed.
func (o *Output) ClearSource() {
	if o == nil {
		return
	}
	o.source = nil
	o.port = 0
}
