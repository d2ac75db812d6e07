/**
 * Copyright (c) 2019, The Linkage Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package testutil

import (
	"github.com/botobag/artemis/graphql"

	"github.com/botobag/linkage/depgraph"
)

// Engine implements depgraph.Engine and records every registration made through it so tests can
// assert on exactly what the depend package forwarded.
type Engine struct {
	// DependencyErr, when non-nil, is returned by every Dependency call.
	DependencyErr error

	dependencies map[string]*Dependency
}

var _ depgraph.Engine = (*Engine)(nil)

// NewEngine creates an empty recording engine.
func NewEngine() *Engine {
	return &Engine{
		dependencies: map[string]*Dependency{},
	}
}

// Dependency implements depgraph.Engine. It hands back the same recording handle for the same
// type name.
func (engine *Engine) Dependency(t graphql.Object) (depgraph.Dependency, error) {
	if engine.DependencyErr != nil {
		return nil, engine.DependencyErr
	}

	name := t.Name()
	dependency, exists := engine.dependencies[name]
	if !exists {
		dependency = &Dependency{Type: t}
		engine.dependencies[name] = dependency
	}
	return dependency, nil
}

// DependencyFor returns the recorded handle for the type with the given name, or nil when the
// depend package never asked for one.
func (engine *Engine) DependencyFor(name string) *Dependency {
	return engine.dependencies[name]
}

// NumDependencies returns how many types obtained a handle.
func (engine *Engine) NumDependencies() int {
	return len(engine.dependencies)
}

// RequireCall is one recorded Dependency.Require invocation. Relation thunks are evaluated at
// record time so assertions can compare plain descriptors.
type RequireCall struct {
	Dependent graphql.Type
	Relations []depgraph.Relation
}

// Dependency is the recording depgraph.Dependency handed out by Engine.
type Dependency struct {
	// Type is the object type this handle was obtained for.
	Type graphql.Object

	// RequireErr, InitializerErr and LoaderErr, when non-nil, are returned by the corresponding
	// method to exercise failure propagation.
	RequireErr     error
	InitializerErr error
	LoaderErr      error

	RequireCalls []RequireCall
	Initializers []depgraph.InitializerFunc
	Loaders      []depgraph.LoaderFunc
}

var _ depgraph.Dependency = (*Dependency)(nil)

// Require implements depgraph.Dependency.
func (dependency *Dependency) Require(
	dependent graphql.Type, relations ...depgraph.RelationFunc) error {
	if dependency.RequireErr != nil {
		return dependency.RequireErr
	}

	call := RequireCall{Dependent: dependent}
	for _, relation := range relations {
		call.Relations = append(call.Relations, relation())
	}
	dependency.RequireCalls = append(dependency.RequireCalls, call)
	return nil
}

// DefineInitializer implements depgraph.Dependency.
func (dependency *Dependency) DefineInitializer(init depgraph.InitializerFunc) error {
	if dependency.InitializerErr != nil {
		return dependency.InitializerErr
	}
	dependency.Initializers = append(dependency.Initializers, init)
	return nil
}

// DefineLoader implements depgraph.Dependency.
func (dependency *Dependency) DefineLoader(load depgraph.LoaderFunc) error {
	if dependency.LoaderErr != nil {
		return dependency.LoaderErr
	}
	dependency.Loaders = append(dependency.Loaders, load)
	return nil
}
