// Package cue runs tengo scripts that drive fade controllers over time.
// A cue script defines update(cue, state, t): it is called once per host
// tick with an engine map of fade commands, a persistent state map, and
// the elapsed time in seconds.
package cue

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/timelinefade/fade"
)

const cueDispatchScript = `
if __phase == "update" {
	update(__cue, __state, __t)
}
`

// Runner executes one compiled cue script against one fade controller,
// advanced by Step from the host frame loop.
type Runner struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	ctrl     *fade.Controller
	elapsed  float64
	done     bool
}

// NewRunner compiles src as a cue script bound to ctrl. name is used in
// error messages only.
func NewRunner(name string, src []byte, ctrl *fade.Controller) (*Runner, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("cue: %s: empty script", name)
	}
	if ctrl == nil {
		return nil, fmt.Errorf("cue: %s: nil controller", name)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + cueDispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__cue", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__t", 0.0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("cue: compile %s: %w", name, err)
	}

	return &Runner{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		ctrl:     ctrl,
	}, nil
}

// Name returns the runner's script name.
func (r *Runner) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Done reports whether the script called done().
func (r *Runner) Done() bool { return r != nil && r.done }

// Elapsed returns the total time stepped so far.
func (r *Runner) Elapsed() float64 {
	if r == nil {
		return 0
	}
	return r.elapsed
}

// Step advances the script by dt seconds and runs its update function.
// A no-op after the script declares itself done.
func (r *Runner) Step(dt float64) error {
	if r == nil || r.compiled == nil || r.done {
		return nil
	}
	r.elapsed += dt
	if err := r.compiled.Set("__phase", "update"); err != nil {
		return fmt.Errorf("cue: %s: %w", r.name, err)
	}
	if err := r.compiled.Set("__cue", r.engine()); err != nil {
		return fmt.Errorf("cue: %s: %w", r.name, err)
	}
	if err := r.compiled.Set("__state", r.state); err != nil {
		return fmt.Errorf("cue: %s: %w", r.name, err)
	}
	if err := r.compiled.Set("__t", &tengo.Float{Value: r.elapsed}); err != nil {
		return fmt.Errorf("cue: %s: %w", r.name, err)
	}
	if err := r.compiled.Run(); err != nil {
		return fmt.Errorf("cue: run %s: %w", r.name, err)
	}
	return nil
}

// engine builds the command map handed to the script as `cue`.
func (r *Runner) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["fade_in"] = &tengo.UserFunction{Name: "fade_in", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.ctrl.FadeIn(argFloat(args, 0))
		return tengo.TrueValue, nil
	}}

	values["fade_out"] = &tengo.UserFunction{Name: "fade_out", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.ctrl.FadeOut(argFloat(args, 0))
		return tengo.TrueValue, nil
	}}

	values["set_weight"] = &tengo.UserFunction{Name: "set_weight", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.ctrl.SetWeight(argFloat(args, 0))
		return tengo.TrueValue, nil
	}}

	values["weight"] = &tengo.UserFunction{Name: "weight", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: r.ctrl.Weight()}, nil
	}}

	values["fading"] = &tengo.UserFunction{Name: "fading", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.ctrl.IsFading() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["done"] = &tengo.UserFunction{Name: "done", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.done = true
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		fmt.Printf("cue: %s: %s\n", r.name, strings.Join(parts, " "))
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func argFloat(args []tengo.Object, i int) float64 {
	if i >= len(args) {
		return 0
	}
	switch v := args[i].(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	default:
		return 0
	}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
