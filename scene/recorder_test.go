package scene

type uniformCall struct {
	name  string
	value any
}

// recorder is a UniformSetter that remembers every call in order.
type recorder struct {
	calls []uniformCall
}

func (r *recorder) SetUniform(name string, value any) {
	r.calls = append(r.calls, uniformCall{name, value})
}

// last returns the most recent value set for name.
func (r *recorder) last(name string) (any, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].name == name {
			return r.calls[i].value, true
		}
	}
	return nil, false
}

func (r *recorder) names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.name
	}
	return names
}
