// Command fadesim steps a scene's timelines headlessly at a fixed rate
// and prints the resulting weight trace, which makes fade behavior easy
// to eyeball without a display.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/timelinefade/cue"
	"github.com/milk9111/timelinefade/playable"
	"github.com/milk9111/timelinefade/scene"
)

func main() {
	scenePath := flag.String("scene", "scenes/crossfade.yaml", "scene spec path")
	name := flag.String("timeline", "", "timeline name (defaults to the first in the spec)")
	seconds := flag.Float64("seconds", 12, "how long to simulate")
	dt := flag.Float64("dt", 0.25, "simulation step in seconds")
	flag.Parse()

	if *dt <= 0 || *seconds <= 0 {
		log.Fatal("fadesim: -dt and -seconds must be positive")
	}

	spec, err := scene.LoadSpec(*scenePath)
	if err != nil {
		log.Fatal(err)
	}

	ts, ok := pickTimeline(spec, *name)
	if !ok {
		log.Fatalf("fadesim: no timeline %q in %s", *name, *scenePath)
	}

	obj := scene.NewObject(ts.Name)
	director := playable.NewDirector(ts.Asset(), obj)
	binder := scene.NewBinder(director, obj)
	binder.OnStopped(func(name string) {
		fmt.Printf("%8s  timeline %s stopped\n", "", name)
	})
	binder.Controller().OnFadeOutComplete(func() {
		fmt.Printf("%8s  fade-out complete\n", "")
	})

	runner := loadCue(*scenePath, ts, binder)
	if runner == nil {
		// No cue script: fade in, hold for half the run, fade out.
		binder.FadeIn(ts.FadeIn)
	}

	faded := false
	for t := 0.0; t < *seconds; t += *dt {
		if runner != nil {
			if err := runner.Step(*dt); err != nil {
				log.Fatal(err)
			}
		} else if !faded && t >= *seconds/2 {
			binder.FadeOut(ts.FadeOut)
			faded = true
		}
		binder.Advance(*dt)

		fmt.Printf("%7.2fs  %-12s weight=%.3f fading=%-5v active=%v\n",
			t+*dt, ts.Name, binder.Weight(), binder.Controller().IsFading(), obj.Active())

		if runner != nil && runner.Done() {
			break
		}
	}
}

func pickTimeline(spec *scene.Spec, name string) (scene.TimelineSpec, bool) {
	if name == "" && len(spec.Timelines) > 0 {
		return spec.Timelines[0], true
	}
	for _, ts := range spec.Timelines {
		if ts.Name == name {
			return ts, true
		}
	}
	return scene.TimelineSpec{}, false
}

func loadCue(scenePath string, ts scene.TimelineSpec, binder *scene.Binder) *cue.Runner {
	if ts.Cue == "" {
		return nil
	}
	src, err := os.ReadFile(filepath.Join(filepath.Dir(scenePath), ts.Cue))
	if err != nil {
		fmt.Printf("fadesim: cue %s: %v\n", ts.Cue, err)
		return nil
	}
	runner, err := cue.NewRunner(ts.Cue, src, binder.Controller())
	if err != nil {
		fmt.Printf("fadesim: %v\n", err)
		return nil
	}
	return runner
}
