package scene

import (
	"github.com/milk9111/timelinefade/fade"
	"github.com/milk9111/timelinefade/playable"
)

// Binder ties one director, its fade controller, and one scene object
// together: the object activates when the timeline fades in and
// deactivates once a fade-out completes, track bindings map onto scene
// objects, and director-stopped callbacks are forwarded to the host.
type Binder struct {
	director *playable.Director
	ctrl     *fade.Controller
	object   *Object
	bindings map[string]*Object

	onStopped []func(timelineName string)
}

// NewBinder wires a binder around director and the object its output
// drives. The object may be nil for timelines with no visual of their
// own.
func NewBinder(director *playable.Director, object *Object) *Binder {
	b := &Binder{
		director: director,
		ctrl:     fade.NewController(director),
		object:   object,
		bindings: make(map[string]*Object),
	}
	b.ctrl.OnFadeOutComplete(func() {
		b.object.SetActive(false)
	})
	director.OnStopped(func(d *playable.Director) {
		name := ""
		if a := d.Asset(); a != nil {
			name = a.Name
		}
		for _, fn := range b.onStopped {
			fn(name)
		}
	})
	return b
}

// Controller returns the binder's fade controller.
func (b *Binder) Controller() *fade.Controller {
	if b == nil {
		return nil
	}
	return b.ctrl
}

// Director returns the bound director.
func (b *Binder) Director() *playable.Director {
	if b == nil {
		return nil
	}
	return b.director
}

// Object returns the scene object the timeline's output drives.
func (b *Binder) Object() *Object {
	if b == nil {
		return nil
	}
	return b.object
}

// Bind wires a track binding key to a scene object.
func (b *Binder) Bind(binding string, obj *Object) {
	if b == nil || binding == "" {
		return
	}
	b.bindings[binding] = obj
}

// Bound returns the object wired to a track binding key, if any.
func (b *Binder) Bound(binding string) (*Object, bool) {
	if b == nil {
		return nil, false
	}
	obj, ok := b.bindings[binding]
	return obj, ok
}

// FadeIn activates the scene object and starts a fade-in.
func (b *Binder) FadeIn(duration float64) {
	if b == nil {
		return
	}
	b.object.SetActive(true)
	b.ctrl.FadeIn(duration)
}

// FadeOut starts a fade-out. The scene object deactivates once the
// fade-out completes.
func (b *Binder) FadeOut(duration float64) {
	if b == nil {
		return
	}
	b.ctrl.FadeOut(duration)
}

// Advance moves the fade and playback time forward by dt seconds.
func (b *Binder) Advance(dt float64) {
	if b == nil {
		return
	}
	b.ctrl.Advance(dt)
	b.director.Step(dt)
}

// Weight returns the timeline's current blend weight.
func (b *Binder) Weight() float64 {
	if b == nil {
		return 0
	}
	return b.ctrl.Weight()
}

// OnStopped registers fn to be called with the timeline name whenever
// the director stops.
func (b *Binder) OnStopped(fn func(timelineName string)) {
	if b == nil || fn == nil {
		return
	}
	b.onStopped = append(b.onStopped, fn)
}
