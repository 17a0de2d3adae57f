package fade

import "testing"

func TestSetupRedirectsPrimaryOutput(t *testing.T) {
	d := &stubDirector{}
	var r OutputRedirector
	r.Setup(d)

	if d.rebuilds != 1 {
		t.Fatalf("rebuilds = %d, want 1", d.rebuilds)
	}
	if !d.paused {
		t.Fatalf("rebuild must leave the director paused")
	}
	if !r.Established() {
		t.Fatalf("redirection should be established")
	}
	if len(d.created) != 1 {
		t.Fatalf("created %d outputs, want 1", len(d.created))
	}

	// The new output took over the original's target and source.
	out := d.created[0]
	if out.target != "screen" {
		t.Fatalf("new output target = %v, want screen", out.target)
	}
	if src, port := out.Source(); src != "clip" || port != 0 {
		t.Fatalf("new output source = %v port %d, want clip port 0", src, port)
	}
	if out.weight != 1 {
		t.Fatalf("new output weight = %v, want 1", out.weight)
	}

	// The original output stays structurally intact but unfed.
	if src, _ := d.primary.Source(); src != nil {
		t.Fatalf("original output still fed by %v", src)
	}
	if !d.primary.valid {
		t.Fatalf("original output should remain valid")
	}
}

func TestSetupIsIdempotentWhileGraphValid(t *testing.T) {
	d := &stubDirector{}
	var r OutputRedirector
	r.Setup(d)
	r.SetWeight(0.4)
	first := r.Output()

	r.Setup(d)

	if d.rebuilds != 1 {
		t.Fatalf("second Setup rebuilt the graph (rebuilds = %d)", d.rebuilds)
	}
	if len(d.created) != 1 {
		t.Fatalf("second Setup created another output (created = %d)", len(d.created))
	}
	if r.Output() != first {
		t.Fatalf("second Setup changed output identity")
	}
	if got := r.Weight(); got != 0.4 {
		t.Fatalf("second Setup changed weight to %v", got)
	}
}

func TestSetupReestablishesAfterGraphRebuild(t *testing.T) {
	d := &stubDirector{}
	var r OutputRedirector
	r.Setup(d)
	stale := d.created[0]

	// Host tears the graph down and a fresh primary appears on rebuild.
	d.valid = false
	stale.valid = false
	d.primary = &stubOutput{valid: true, target: "screen", source: "clip2", port: 1}

	r.Setup(d)

	if d.rebuilds != 2 {
		t.Fatalf("rebuilds = %d, want 2", d.rebuilds)
	}
	if len(d.created) != 2 {
		t.Fatalf("created %d outputs, want 2", len(d.created))
	}
	if r.Output() == Output(stale) {
		t.Fatalf("redirector still holds the stale output")
	}
	if src, port := d.created[1].Source(); src != "clip2" || port != 1 {
		t.Fatalf("new output source = %v port %d, want clip2 port 1", src, port)
	}
}

func TestDisconnectedWeightOpsAreNoOps(t *testing.T) {
	cases := []struct {
		name  string
		setup func(d *stubDirector)
	}{
		{
			name:  "never_set_up",
			setup: nil,
		},
		{
			name: "primary_has_no_target",
			setup: func(d *stubDirector) {
				d.RebuildGraph()
				d.primary.target = nil
			},
		},
		{
			name: "no_primary_output",
			setup: func(d *stubDirector) {
				d.valid = true // valid graph, but nothing wired yet
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := &stubDirector{}
			var r OutputRedirector
			if c.setup != nil {
				c.setup(d)
				r.Setup(d)
			}

			if r.Established() {
				t.Fatalf("redirection should not be established")
			}
			if got := r.Weight(); got != 0 {
				t.Fatalf("disconnected weight = %v, want 0", got)
			}
			r.SetWeight(0.5)
			if got := r.Weight(); got != 0 {
				t.Fatalf("disconnected SetWeight stuck: weight = %v", got)
			}
		})
	}
}

func TestSetupRecoversOnceTargetExists(t *testing.T) {
	d := &stubDirector{}
	d.RebuildGraph()
	d.primary.target = nil

	var r OutputRedirector
	r.Setup(d)
	if r.Established() {
		t.Fatalf("redirection should fail without a bound target")
	}

	d.primary.target = "screen"
	r.Setup(d)
	if !r.Established() {
		t.Fatalf("redirection should succeed after the host binds a target")
	}
	if got := r.Weight(); got != 1 {
		t.Fatalf("weight = %v, want 1", got)
	}
}
