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

// Package depgraph defines the contract between the depend package and the dependency-graph
// engine that performs batched loading and execution ordering over declared relations. The engine
// itself lives outside this module; depend only registers relations, initializers and loaders
// into it through the interfaces below.
package depgraph

import (
	"context"

	"github.com/botobag/artemis/graphql"
)

// Engine is the dependency-graph registry that relations are declared into. Implementations keep
// one Dependency per object type and must hand back the same handle for the same type within one
// schema build.
type Engine interface {
	// Dependency returns the dependency handle registered for the given object type, creating one
	// on first request.
	Dependency(t graphql.Object) (Dependency, error)
}

// Dependency is the per-type handle through which relations and callbacks are attached. It is
// opaque to the depend package: values obtained from an Engine are forwarded registrations and
// nothing more.
type Dependency interface {
	// Require attaches relations that load data of the dependent type into fields of the handle's
	// own type. dependent is the resolved schema type of the data being attached; a List type
	// denotes a to-many relation, an Object type a to-one relation.
	Require(dependent graphql.Type, relations ...RelationFunc) error

	// DefineInitializer registers the callback run by the engine before any of the type's
	// relations load.
	DefineInitializer(init InitializerFunc) error

	// DefineLoader registers the callback the engine uses to fetch the type's data in batch.
	DefineLoader(load LoaderFunc) error
}

// RelationFunc produces a Relation descriptor when the engine is ready to consume it.
type RelationFunc func() Relation

// InitializerFunc seeds per-type state before the engine loads any of the type's relations. The
// depend package forwards these verbatim and never invokes them.
type InitializerFunc func(ctx context.Context) error

// LoaderFunc fetches the entities identified by keys in a single batch. Results are returned in
// key order. As with InitializerFunc, the depend package treats the value as opaque payload.
type LoaderFunc func(ctx context.Context, keys []interface{}) ([]interface{}, error)
