// Package params implements declaration and resolution of deployment
// parameters. Parameters are declared once, at startup, in a Registry;
// each is resolved to a concrete value at most once per run, consulting
// in order the environment, an optional params file, the operator (in
// interactive runs), and the declared default.
package params

import (
	"os"
	"strconv"
	"strings"
)

// Spec declares a parameter.
type Spec struct {
	// Name identifies the parameter, e.g. "search-db". Unique within a
	// registry.
	Name string
	// Env names the environment variable that can supply a value. A
	// non-empty environment value is used verbatim and wins over every
	// other source.
	Env string
	// Default is used when no other source yields a value; nil means
	// the parameter has no default.
	Default *string
	// Prompt, when non-empty, is the label shown when asking the
	// operator for a value. Only required parameters are ever prompted
	// for, and only in interactive runs.
	Prompt string
	// Required marks parameters that must resolve to a non-empty value.
	Required bool
}

// Default is a convenience for filling in Spec.Default.
func Default(v string) *string {
	return &v
}

// A Parameter is resolved at most once per run. The first resolution is
// frozen; later calls return the same value without consulting the
// environment, the params file, or the operator again.
type Parameter struct {
	spec     Spec
	registry *Registry

	resolved bool
	value    string
}

func (p *Parameter) resolve() (string, error) {
	if p.resolved {
		return p.value, nil
	}
	v, err := p.lookup()
	if err != nil {
		return "", err
	}
	if v == "" && p.spec.Required {
		return "", MissingParameterError(p.spec)
	}
	p.value = v
	p.resolved = true
	return v, nil
}

// lookup consults the sources in precedence order. An empty string
// means no source had a value.
func (p *Parameter) lookup() (string, error) {
	if v := os.Getenv(p.spec.Env); v != "" {
		return v, nil
	}
	if v, ok := p.registry.file.lookup(p.spec.Name); ok && v != "" {
		return v, nil
	}
	if p.registry.prompter != nil && p.spec.Required && p.spec.Prompt != "" {
		def := ""
		if p.spec.Default != nil {
			def = *p.spec.Default
		}
		v, err := p.registry.prompter.Ask(p.spec.Prompt, def)
		if err != nil {
			return "", err
		}
		// a blank answer means the operator accepted the default
		if v != "" {
			return v, nil
		}
	}
	if p.spec.Default != nil {
		return *p.spec.Default, nil
	}
	return "", nil
}

// StringValue is a handle on a string-valued parameter.
type StringValue struct {
	p *Parameter
}

// Resolve returns the parameter's value, resolving it on first use. An
// optional parameter no source supplies resolves to "", which callers
// treat as "feature disabled".
func (v StringValue) Resolve() (string, error) {
	return v.p.resolve()
}

// BoolValue is a handle on a boolean parameter.
type BoolValue struct {
	p *Parameter
}

// Resolve returns the parameter's value. The underlying string is
// parsed as a boolean; an optional parameter with no value is false.
func (v BoolValue) Resolve() (bool, error) {
	s, err := v.p.resolve()
	if err != nil {
		return false, err
	}
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, InvalidValueError(v.p.spec, s, `a boolean ("true" or "false")`)
	}
	return b, nil
}

// ListValue is a handle on a whitespace-separated list parameter.
type ListValue struct {
	p *Parameter
}

// Resolve returns the parameter's value split on whitespace. An
// optional parameter with no value resolves to an empty list.
func (v ListValue) Resolve() ([]string, error) {
	s, err := v.p.resolve()
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}
