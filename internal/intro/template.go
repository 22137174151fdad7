package intro

import (
	"fmt"
	"html/template"
	"io"
)

// Template renders a compiled intro body.
type Template interface {
	Execute(w io.Writer, data any) error
}

// Compiler turns stripped intro markup into a Template.
type Compiler interface {
	Compile(name, markup string) (Template, error)
}

// HTMLCompiler compiles bodies with html/template.
type HTMLCompiler struct{}

func (HTMLCompiler) Compile(name, markup string) (Template, error) {
	t, err := template.New(name).Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("compile intro template: %w", err)
	}
	return t, nil
}
