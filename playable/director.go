package playable

import (
	"github.com/milk9111/timelinefade/fade"
	"github.com/milk9111/timelinefade/timeline"
)

// Director owns and steps one playback graph over a timeline asset. The
// host drives playback time by calling Step once per frame; Play, Pause,
// Resume and Stop control whether time advances. Stopped callbacks fire
// when a non-looping asset runs out or Stop is called explicitly.
type Director struct {
	asset  *timeline.Asset
	target any
	speed  float64

	graph   *Graph
	time    float64
	playing bool

	onStopped []func(*Director)
}

var _ fade.Director = (*Director)(nil)

// NewDirector creates a director for the asset, feeding target.
func NewDirector(asset *timeline.Asset, target any) *Director {
	return &Director{asset: asset, target: target, speed: 1}
}

// Asset returns the timeline asset this director plays.
func (d *Director) Asset() *timeline.Asset {
	if d == nil {
		return nil
	}
	return d.asset
}

// GraphValid reports whether the director holds a live graph.
func (d *Director) GraphValid() bool { return d != nil && d.graph.Valid() }

// RebuildGraph destroys any previous graph and builds a fresh one,
// rewound and paused. A no-op when the asset is not playable.
func (d *Director) RebuildGraph() {
	if d == nil || !d.asset.Valid() {
		return
	}
	d.graph.Destroy()
	d.graph = newGraph(d.asset.Name, d.target)
	d.time = 0
	d.playing = false
}

// Play rebuilds the graph if needed and starts playback from the top.
func (d *Director) Play() {
	if d == nil {
		return
	}
	if !d.GraphValid() {
		d.RebuildGraph()
	}
	if !d.GraphValid() {
		return
	}
	d.time = 0
	d.playing = true
}

// Resume continues playback without rewinding.
func (d *Director) Resume() {
	if d == nil || !d.GraphValid() {
		return
	}
	d.playing = true
}

// Pause halts playback, keeping the current position.
func (d *Director) Pause() {
	if d == nil {
		return
	}
	d.playing = false
}

// Stop halts playback, rewinds, and fires the stopped callbacks.
func (d *Director) Stop() {
	if d == nil {
		return
	}
	d.playing = false
	d.time = 0
	for _, fn := range d.onStopped {
		fn(d)
	}
}

// Playing reports whether playback time is advancing.
func (d *Director) Playing() bool { return d != nil && d.playing }

// Time returns the current playback position in seconds.
func (d *Director) Time() float64 {
	if d == nil {
		return 0
	}
	return d.time
}

// SetSpeed scales how fast playback time advances. Defaults to 1.
func (d *Director) SetSpeed(speed float64) {
	if d == nil || speed < 0 {
		return
	}
	d.speed = speed
}

// Step advances playback time by dt seconds while playing. Looping
// assets wrap; non-looping assets stop at the end.
func (d *Director) Step(dt float64) {
	if d == nil || !d.playing || dt <= 0 || !d.asset.Valid() {
		return
	}
	d.time += dt * d.speed
	if d.time < d.asset.Duration {
		return
	}
	if d.asset.Loop {
		for d.time >= d.asset.Duration {
			d.time -= d.asset.Duration
		}
		return
	}
	d.Stop()
}

// OnStopped registers fn to be called whenever playback stops, either
// explicitly or by running out of a non-looping asset.
func (d *Director) OnStopped(fn func(*Director)) {
	if d == nil || fn == nil {
		return
	}
	d.onStopped = append(d.onStopped, fn)
}

// PrimaryOutput returns the graph's first weighted output, or nil.
func (d *Director) PrimaryOutput() fade.Output {
	if d == nil || !d.GraphValid() || len(d.graph.outputs) == 0 {
		return nil
	}
	return d.graph.outputs[0]
}

// NewOutput creates an additional weighted output on the live graph
// bound to target, or nil when there is no live graph.
func (d *Director) NewOutput(target fade.Target) fade.Output {
	if d == nil || !d.GraphValid() {
		return nil
	}
	out := &Output{graph: d.graph, target: target}
	d.graph.outputs = append(d.graph.outputs, out)
	return out
}
