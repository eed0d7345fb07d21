package model

// Signal is an immutable catalog entry: a named indicator whose weight is
// positive when it raises risk and negative when it mitigates it.
type Signal struct {
	id     string
	label  string
	weight int
}

// NewSignal creates a Signal.
func NewSignal(id, label string, weight int) Signal {
	return Signal{id: id, label: label, weight: weight}
}

func (s Signal) ID() string    { return s.id }
func (s Signal) Label() string { return s.label }
func (s Signal) Weight() int   { return s.weight }

// Mitigating reports whether the signal lowers the aggregate score.
func (s Signal) Mitigating() bool { return s.weight < 0 }
