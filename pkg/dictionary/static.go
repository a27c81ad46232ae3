package dictionary

import "context"

// StaticProvider is a fixed, in-memory Provider, primarily useful for tests
// and embedders that load their dictionary set once at startup.
type StaticProvider struct {
	infos []Info
	tags  []Tag
}

// NewStaticProvider builds a StaticProvider from a fixed snapshot.
func NewStaticProvider(infos []Info, tags []Tag) *StaticProvider {
	return &StaticProvider{infos: infos, tags: tags}
}

func (p *StaticProvider) Dictionaries(ctx context.Context) ([]Info, error) {
	out := make([]Info, len(p.infos))
	copy(out, p.infos)
	return out, nil
}

func (p *StaticProvider) Tags(ctx context.Context) ([]Tag, error) {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out, nil
}
