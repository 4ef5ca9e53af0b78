package mock

import "github.com/fwojciec/optsearch"

var _ optsearch.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of optsearch.Renderer.
type Renderer struct {
	RenderFn func(r optsearch.Record) (string, error)
}

func (m *Renderer) Render(r optsearch.Record) (string, error) {
	return m.RenderFn(r)
}
