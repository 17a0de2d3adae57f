package fade

// OutputRedirector performs the one-time rewiring that gives a
// controller exclusive control over one output's blend weight. It
// inserts a new weighted output between the graph's source stream and
// the real target, then detaches the original output so anything still
// reading the original is unaffected by fades.
//
// The zero value is ready to use and starts disconnected: weight reads
// return 0 and writes are dropped until Setup succeeds.
type OutputRedirector struct {
	output      Output
	established bool
}

// Setup ensures redirection is in place for d's graph. Safe to call
// repeatedly; once established it is a no-op until the graph becomes
// invalid again. Failures never panic or error, they leave the
// redirector disconnected until a later Setup succeeds.
func (r *OutputRedirector) Setup(d Director) {
	if r == nil || d == nil {
		return
	}
	if !d.GraphValid() {
		// The host tore the graph down; any prior redirection died with it.
		r.established = false
		r.output = nil
		d.RebuildGraph()
		if !d.GraphValid() {
			return
		}
	}
	if r.established {
		return
	}
	orig := d.PrimaryOutput()
	if orig == nil || !orig.Valid() || orig.Target() == nil {
		return
	}
	out := d.NewOutput(orig.Target())
	if out == nil {
		return
	}
	src, port := orig.Source()
	orig.ClearSource()
	out.SetSource(src, port)
	out.SetWeight(1)
	r.output = out
	r.established = true
}

// Established reports whether a live redirected output is in place.
func (r *OutputRedirector) Established() bool {
	return r != nil && r.established && r.output != nil && r.output.Valid()
}

// Output returns the redirected output, or nil when disconnected.
func (r *OutputRedirector) Output() Output {
	if r == nil || !r.Established() {
		return nil
	}
	return r.output
}

// Weight returns the redirected output's blend weight, or 0 when
// disconnected.
func (r *OutputRedirector) Weight() float64 {
	if r == nil || r.output == nil || !r.output.Valid() {
		return 0
	}
	return r.output.Weight()
}

// SetWeight writes w to the redirected output. Writes are dropped while
// disconnected.
func (r *OutputRedirector) SetWeight(w float64) {
	if r == nil || r.output == nil || !r.output.Valid() {
		return
	}
	r.output.SetWeight(w)
}
