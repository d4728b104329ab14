package params

// Registry holds every parameter declared for a run, in declaration
// order and unique by name. Construct one per process and hand it to
// the components that resolve values through it.
type Registry struct {
	prompter Prompter
	file     *File

	ordered []*Parameter
	byName  map[string]*Parameter
}

type Option interface {
	apply(*Registry)
}

type optionFunc func(*Registry)

func (f optionFunc) apply(r *Registry) {
	f(r)
}

// Interactively lets required parameters with a prompt label ask the
// operator through p when neither the environment nor the params file
// supplies a value.
func Interactively(p Prompter) Option {
	return optionFunc(func(r *Registry) {
		r.prompter = p
	})
}

// FromFile makes the registry consult f after the environment and
// before prompting.
func FromFile(f *File) Option {
	return optionFunc(func(r *Registry) {
		r.file = f
	})
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byName: map[string]*Parameter{},
	}
	for _, opt := range opts {
		opt.apply(r)
	}
	return r
}

func (r *Registry) declare(s Spec) *Parameter {
	if _, ok := r.byName[s.Name]; ok {
		panic("parameter declared twice: " + s.Name)
	}
	p := &Parameter{spec: s, registry: r}
	r.byName[s.Name] = p
	r.ordered = append(r.ordered, p)
	return p
}

// String declares a string-valued parameter.
func (r *Registry) String(s Spec) StringValue {
	return StringValue{r.declare(s)}
}

// Path declares a filesystem path parameter. Paths resolve exactly as
// strings do; the distinction is for the reader.
func (r *Registry) Path(s Spec) StringValue {
	return StringValue{r.declare(s)}
}

// Bool declares a boolean parameter.
func (r *Registry) Bool(s Spec) BoolValue {
	return BoolValue{r.declare(s)}
}

// StringList declares a whitespace-separated list parameter.
func (r *Registry) StringList(s Spec) ListValue {
	return ListValue{r.declare(s)}
}

// List returns the declared parameter specs in declaration order. It
// does not resolve anything; resolution may have side effects (e.g.
// prompting) that a diagnostic listing must not trigger.
func (r *Registry) List() []Spec {
	specs := make([]Spec, len(r.ordered))
	for i, p := range r.ordered {
		specs[i] = p.spec
	}
	return specs
}
