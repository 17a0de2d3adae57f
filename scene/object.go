package scene

// Object is an activatable scene object a timeline's tracks bind to.
// An inactive object contributes nothing to the final output, whatever
// its bound weight says.
type Object struct {
	name   string
	active bool
}

// NewObject creates an inactive object.
func NewObject(name string) *Object {
	return &Object{name: name}
}

// Name returns the object's name.
func (o *Object) Name() string {
	if o == nil {
		return ""
	}
	return o.name
}

// SetActive toggles the object on or off.
func (o *Object) SetActive(active bool) {
	if o == nil {
		return
	}
	o.active = active
}

// Active reports whether the object is on.
func (o *Object) Active() bool { return o != nil && o.active }
