package scene

import (
	"testing"

	"github.com/milk9111/timelinefade/playable"
	"github.com/milk9111/timelinefade/timeline"
)

func newTestBinder(t *testing.T, asset *timeline.Asset) (*Binder, *Object) {
	t.Helper()
	obj := NewObject(asset.Name)
	d := playable.NewDirector(asset, obj)
	return NewBinder(d, obj), obj
}

func TestBinderActivatesAroundFades(t *testing.T) {
	b, obj := newTestBinder(t, &timeline.Asset{Name: "intro", Duration: 10})

	if obj.Active() {
		t.Fatalf("object should start inactive")
	}

	b.FadeIn(1.0)
	if !obj.Active() {
		t.Fatalf("object should activate on fade-in")
	}
	for i := 0; i < 4; i++ {
		b.Advance(0.25)
	}
	if got := b.Weight(); got != 1 {
		t.Fatalf("weight = %v after full fade-in, want 1", got)
	}
	if !obj.Active() {
		t.Fatalf("object should stay active while visible")
	}

	b.FadeOut(0.5)
	b.Advance(0.25)
	if obj.Active() != true {
		t.Fatalf("object should stay active mid fade-out")
	}
	b.Advance(0.25)
	if obj.Active() {
		t.Fatalf("object should deactivate once fade-out completes")
	}
	if got := b.Weight(); got != 0 {
		t.Fatalf("weight = %v after fade-out, want 0", got)
	}
}

func TestBinderForwardsStopped(t *testing.T) {
	b, _ := newTestBinder(t, &timeline.Asset{Name: "intro", Duration: 1})

	var stopped []string
	b.OnStopped(func(name string) { stopped = append(stopped, name) })

	b.FadeIn(0)
	b.Advance(0.5)
	b.Advance(0.5)

	if len(stopped) != 1 || stopped[0] != "intro" {
		t.Fatalf("stopped = %v, want [intro]", stopped)
	}
}

func TestBinderTrackBindings(t *testing.T) {
	spec := TimelineSpec{
		Name:     "intro",
		Duration: 4,
		Tracks: []timeline.Track{
			{Name: "main", Binding: "sky"},
			{Name: "detail", Binding: "clouds"},
		},
	}
	b, _ := newTestBinder(t, spec.Asset())

	sky := NewObject("sky")
	for _, tr := range spec.Tracks {
		if tr.Binding == "sky" {
			b.Bind(tr.Binding, sky)
		}
	}

	if got, ok := b.Bound("sky"); !ok || got != sky {
		t.Fatalf("Bound(sky) = %v, %v", got, ok)
	}
	if _, ok := b.Bound("clouds"); ok {
		t.Fatalf("clouds should be unbound")
	}
}
