// Package timeline describes the assets directors play back.
package timeline

// Track binds one lane of an asset's animation stream to a named scene
// binding.
type Track struct {
	Name    string `yaml:"name"`
	Binding string `yaml:"binding"`
}

// Asset is one playable timeline: a fixed duration of animation content
// plus the tracks the host wires to scene objects.
type Asset struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
	Tracks   []Track `yaml:"tracks"`
}

// Valid reports whether the asset can be played.
func (a *Asset) Valid() bool {
	return a != nil && a.Name != "" && a.Duration > 0
}

// Track returns the track with the given name, if present.
func (a *Asset) Track(name string) (Track, bool) {
	if a == nil {
		return Track{}, false
	}
	for _, tr := range a.Tracks {
		if tr.Name == name {
			return tr, true
		}
	}
	return Track{}, false
}
