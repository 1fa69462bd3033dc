package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/benedict2310/scrollyctl/pkg/model"
)

// ErrUnbound is returned by the placeholder callbacks bound when a manifest is loaded
// without a Registry.
var ErrUnbound = errors.New("callback is not bound")

// Registry maps the callback and pending-source names used in manifests to Go functions.
type Registry struct {
	reshape   map[string]model.ReshapeFunc
	build     map[string]model.BuildGraphFunc
	scroll    map[string]model.ScrollFunc
	narration map[string]model.NarrationFunc
	sources   map[string]model.ResolveFunc
}

func NewRegistry() *Registry {
	return &Registry{
		reshape:   make(map[string]model.ReshapeFunc),
		build:     make(map[string]model.BuildGraphFunc),
		scroll:    make(map[string]model.ScrollFunc),
		narration: make(map[string]model.NarrationFunc),
		sources:   make(map[string]model.ResolveFunc),
	}
}

func (r *Registry) RegisterReshape(name string, fn model.ReshapeFunc) {
	r.reshape[name] = fn
}

func (r *Registry) RegisterBuildGraph(name string, fn model.BuildGraphFunc) {
	r.build[name] = fn
}

func (r *Registry) RegisterScroll(name string, fn model.ScrollFunc) {
	r.scroll[name] = fn
}

func (r *Registry) RegisterNarration(name string, fn model.NarrationFunc) {
	r.narration[name] = fn
}

// RegisterSource binds a name usable as {pending: name} for narration or data.
func (r *Registry) RegisterSource(name string, fn model.ResolveFunc) {
	r.sources[name] = fn
}

// binder resolves names for one load. A nil registry binds every non-empty name to a
// placeholder so that presence can still be validated.
type binder struct {
	registry *Registry
}

func (b binder) reshape(name string) (model.ReshapeFunc, error) {
	if name == "" {
		return nil, nil
	}
	if b.registry == nil {
		return func(any) (any, error) { return nil, unbound(name) }, nil
	}
	return lookup(b.registry.reshape, "reshapeDataFunction", name)
}

func (b binder) buildGraph(name string) (model.BuildGraphFunc, error) {
	if name == "" {
		return nil, nil
	}
	if b.registry == nil {
		return func(context.Context, string, *model.Section) (any, error) { return nil, unbound(name) }, nil
	}
	return lookup(b.registry.build, "buildGraphFunction", name)
}

func (b binder) scroll(name string) (model.ScrollFunc, error) {
	if name == "" {
		return nil, nil
	}
	if b.registry == nil {
		return func(model.ScrollEvent) {}, nil
	}
	return lookup(b.registry.scroll, "onScrollFunction", name)
}

func (b binder) narration(name string) (model.NarrationFunc, error) {
	if name == "" {
		return nil, nil
	}
	if b.registry == nil {
		return func(model.NarrationEvent) {}, nil
	}
	return lookup(b.registry.narration, "onActivateNarrationFunction", name)
}

func (b binder) source(name string) (model.ResolveFunc, error) {
	if name == "" {
		return nil, nil
	}
	if b.registry == nil {
		return func(context.Context) (any, error) { return nil, unbound(name) }, nil
	}
	return lookup(b.registry.sources, "pending", name)
}

func lookup[F any](fns map[string]F, field, name string) (F, error) {
	fn, ok := fns[name]
	if !ok {
		var zero F
		return zero, fmt.Errorf("%s %q is not registered", field, name)
	}
	return fn, nil
}

func unbound(name string) error {
	return fmt.Errorf("%w: %s", ErrUnbound, name)
}
