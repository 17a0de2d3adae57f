package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/timelinefade/common"
	"github.com/milk9111/timelinefade/cue"
	"github.com/milk9111/timelinefade/playable"
	"github.com/milk9111/timelinefade/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// lane is one timeline on screen: its binder, its visual layer, and an
// optional cue script driving it.
type lane struct {
	spec   scene.TimelineSpec
	binder *scene.Binder
	object *scene.Object
	runner *cue.Runner
	img    *ebiten.Image
	x, y   float64
}

type Game struct {
	frames    int
	scenePath string
	spec      *scene.Spec
	lanes     []*lane
	ui        *ebitenui.UI
	watcher   *scene.Watcher
}

func NewGame(scenePath string) (*Game, error) {
	spec, err := scene.LoadSpec(scenePath)
	if err != nil {
		return nil, err
	}
	g := &Game{scenePath: scenePath}
	g.rebuild(spec)
	g.ui = NewControlUI(g)
	g.resetWatcher()
	return g, nil
}

// resetWatcher re-derives the watched file set from the current spec.
// Called at startup and after every reload, since a reload can change
// which cue scripts the scene references.
func (g *Game) resetWatcher() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	w, err := scene.WatchSpec(g.scenePath, g.spec)
	if err != nil {
		fmt.Printf("game: scene watcher disabled: %v\n", err)
		g.watcher = nil
		return
	}
	g.watcher = w
}

// Close releases the game's filesystem watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// rebuild replaces all lanes from a fresh spec. Called at startup and on
// live reload.
func (g *Game) rebuild(spec *scene.Spec) {
	g.spec = spec
	g.lanes = nil
	for _, ts := range spec.Timelines {
		obj := scene.NewObject(ts.Name)
		director := playable.NewDirector(ts.Asset(), obj)
		b := scene.NewBinder(director, obj)
		for _, tr := range ts.Tracks {
			b.Bind(tr.Binding, obj)
		}
		b.OnStopped(func(name string) {
			fmt.Printf("game: timeline %s stopped\n", name)
		})

		ln := &lane{spec: ts, binder: b, object: obj}
		if layer, ok := spec.Layer(ts.Layer); ok {
			ln.img = layerImage(layer)
			ln.x = layer.X
			ln.y = layer.Y
		}
		if ts.Cue != "" {
			ln.runner = g.loadCue(ts.Cue, b)
		}
		g.lanes = append(g.lanes, ln)
	}
}

func (g *Game) loadCue(name string, b *scene.Binder) *cue.Runner {
	src, err := os.ReadFile(filepath.Join(filepath.Dir(g.scenePath), name))
	if err != nil {
		fmt.Printf("game: cue %s: %v\n", name, err)
		return nil
	}
	r, err := cue.NewRunner(name, src, b.Controller())
	if err != nil {
		fmt.Printf("game: %v\n", err)
		return nil
	}
	return r
}

func (g *Game) reload() {
	spec, err := scene.LoadSpec(g.scenePath)
	if err != nil {
		fmt.Printf("game: reload: %v\n", err)
		return
	}
	g.rebuild(spec)
	g.ui = NewControlUI(g)
	g.resetWatcher()
}

func (g *Game) Update() error {
	g.frames++
	const dt = 1.0 / 60

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break
			}
			fmt.Printf("game: %s changed, reloading scene\n", name)
			g.reload()
		default:
		}
	}

	for i, ln := range g.lanes {
		if ln.runner != nil && !ln.runner.Done() {
			if err := ln.runner.Step(dt); err != nil {
				fmt.Printf("game: %v\n", err)
				ln.runner = nil
			}
		}
		ln.binder.Advance(dt)

		// Digit keys toggle the matching timeline.
		if i < 9 && inpututil.IsKeyJustPressed(ebiten.KeyDigit1+ebiten.Key(i)) {
			g.toggle(ln)
		}
	}

	g.ui.Update()
	return nil
}

// toggle fades a hidden or hiding lane in, and a visible one out.
func (g *Game) toggle(ln *lane) {
	ctrl := ln.binder.Controller()
	if ctrl.IsFadingOut() || (!ctrl.IsFading() && ln.binder.Weight() <= 0) {
		ln.binder.FadeIn(ln.spec.FadeIn)
		return
	}
	ln.binder.FadeOut(ln.spec.FadeOut)
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, ln := range g.lanes {
		if ln.img == nil || !ln.object.Active() {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ln.x, ln.y)
		op.ColorScale.ScaleAlpha(float32(common.Clamp01(ln.binder.Weight())))
		screen.DrawImage(ln.img, op)
	}

	status := fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS())
	for i, ln := range g.lanes {
		status += fmt.Sprintf("\n[%d] %s  weight=%.2f  fading=%v  t=%.2f",
			i+1, ln.spec.Name, ln.binder.Weight(), ln.binder.Controller().IsFading(), ln.binder.Director().Time())
	}
	ebitenutil.DebugPrint(screen, status)

	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
