// Package scene holds the host-side glue around the fade core: yaml
// scene specs, activatable scene objects, the binder that ties a
// director, its fade controller, and an object together, and a watcher
// for live spec reload.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/timelinefade/timeline"
)

// LayerSpec describes one visual layer a timeline fades.
type LayerSpec struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     int     `yaml:"w"`
	H     int     `yaml:"h"`
}

// TimelineSpec describes one timeline, its default fade durations, the
// layer its output feeds, and an optional cue script driving it.
type TimelineSpec struct {
	Name     string           `yaml:"name"`
	Duration float64          `yaml:"duration"`
	Loop     bool             `yaml:"loop"`
	FadeIn   float64          `yaml:"fade_in"`
	FadeOut  float64          `yaml:"fade_out"`
	Layer    string           `yaml:"layer"`
	Cue      string           `yaml:"cue"`
	Tracks   []timeline.Track `yaml:"tracks"`
}

// Asset builds the timeline asset this spec plays.
func (t TimelineSpec) Asset() *timeline.Asset {
	return &timeline.Asset{
		Name:     t.Name,
		Duration: t.Duration,
		Loop:     t.Loop,
		Tracks:   t.Tracks,
	}
}

// Spec is a full scene description.
type Spec struct {
	Name      string         `yaml:"name"`
	Layers    []LayerSpec    `yaml:"layers"`
	Timelines []TimelineSpec `yaml:"timelines"`
}

// Layer returns the layer spec with the given name, if present.
func (s *Spec) Layer(name string) (LayerSpec, bool) {
	if s == nil {
		return LayerSpec{}, false
	}
	for _, l := range s.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return LayerSpec{}, false
}

// LoadSpec reads and validates a scene spec from a yaml file.
func LoadSpec(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", filename, err)
	}
	return ParseSpec(data)
}

// ParseSpec decodes and validates a scene spec from yaml bytes.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scene: unmarshal spec: %w", err)
	}
	if len(spec.Timelines) == 0 {
		return nil, fmt.Errorf("scene: spec %q has no timelines", spec.Name)
	}
	for i, t := range spec.Timelines {
		if t.Name == "" {
			return nil, fmt.Errorf("scene: timeline %d has no name", i)
		}
		if t.Duration <= 0 {
			return nil, fmt.Errorf("scene: timeline %q has non-positive duration %v", t.Name, t.Duration)
		}
		if t.Layer != "" {
			if _, ok := spec.Layer(t.Layer); !ok {
				return nil, fmt.Errorf("scene: timeline %q references unknown layer %q", t.Name, t.Layer)
			}
		}
	}
	return &spec, nil
}
