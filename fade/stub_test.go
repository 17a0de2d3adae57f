package fade

type stubOutput struct {
	valid  bool
	target Target
	weight float64
	source Source
	port   int
}

func (o *stubOutput) Valid() bool           { return o != nil && o.valid }
func (o *stubOutput) Target() Target        { return o.target }
func (o *stubOutput) Weight() float64       { return o.weight }
func (o *stubOutput) SetWeight(w float64)   { o.weight = w }
func (o *stubOutput) Source() (Source, int) { return o.source, o.port }

func (o *stubOutput) SetSource(src Source, port int) {
	o.source = src
	o.port = port
}

func (o *stubOutput) ClearSource() {
	o.source = nil
	o.port = 0
}

// stubDirector is an in-test graph runtime: one primary output, created
// on rebuild, plus whatever outputs redirection asks for.
type stubDirector struct {
	valid  bool
	paused bool

	rebuilds int
	resumes  int
	pauses   int

	primary *stubOutput
	created []*stubOutput
}

func (d *stubDirector) GraphValid() bool { return d.valid }

func (d *stubDirector) RebuildGraph() {
	d.rebuilds++
	d.valid = true
	d.paused = true
	if d.primary == nil {
		d.primary = &stubOutput{valid: true, target: "screen", source: "clip", port: 0}
	}
}

func (d *stubDirector) Resume() {
	d.resumes++
	d.paused = false
}

func (d *stubDirector) Pause() {
	d.pauses++
	d.paused = true
}

func (d *stubDirector) PrimaryOutput() Output {
	if d.primary == nil {
		return nil
	}
	return d.primary
}

func (d *stubDirector) NewOutput(target Target) Output {
	out := &stubOutput{valid: true, target: target}
	d.created = append(d.created, out)
	return out
}
