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

package depend

import (
	"errors"

	"github.com/botobag/artemis/graphql"

	"github.com/botobag/linkage/depgraph"
)

// A Registrar collects dependency declarations made before a schema exists and resolves them once
// the schema builder hands the finished schema to SchemaReady. It owns the ordered hook list and
// the reference to the first schema it observed; both outlive any single schema build.
//
// A Registrar is not safe for concurrent use. Declarations and SchemaReady are expected to run on
// the goroutine that assembles the schema.
type Registrar struct {
	// engine receives resolved relations, initializers and loaders.
	engine depgraph.Engine

	// hooks in registration order. Append-only: draining does not remove entries, so a later
	// schema build replays every hook against the new schema.
	hooks []Hook

	// schema is the first schema observed by a successfully resolving declaration. It is written
	// at most once (first writer wins) and read by Dependency. Reset clears it.
	schema *graphql.Schema
}

var errMissingEngine = errors.New("an engine is required to construct a Registrar")

// New creates a Registrar that registers declarations into the given engine.
func New(engine depgraph.Engine) (*Registrar, error) {
	if engine == nil {
		return nil, errMissingEngine
	}
	return &Registrar{
		engine: engine,
	}, nil
}

// RegisterSchemaHook appends hook to the list run by SchemaReady. Registering a hook value that
// is already present is a no-op; see sameHook for what "already present" means.
func (r *Registrar) RegisterSchemaHook(hook Hook) {
	if hook == nil {
		return
	}
	for _, h := range r.hooks {
		if sameHook(h, hook) {
			return
		}
	}
	r.hooks = append(r.hooks, hook)
}

// SchemaReady runs every registered hook against schema in registration order. It is called by
// the schema builder after graphql.NewSchema succeeds. The first hook error stops the pass and is
// returned; hooks after the failing one do not run. Hooks remain registered, so calling
// SchemaReady again (e.g. for a rebuilt schema) replays all of them.
func (r *Registrar) SchemaReady(schema *graphql.Schema) error {
	if schema == nil {
		return NewError("no schema was provided", Op("depend.SchemaReady"))
	}

	for _, hook := range r.hooks {
		if err := hook.SchemaReady(schema); err != nil {
			return err
		}
	}

	return nil
}

// captureSchema records the first schema a resolving declaration sees. First writer wins.
func (r *Registrar) captureSchema(schema *graphql.Schema) {
	if r.schema == nil {
		r.schema = schema
	}
}

// Reset clears the captured schema so the next SchemaReady pass is observed fresh. Registered
// hooks are kept. This exists for long-running processes (notably test suites) that build more
// than one schema and must not leak the first build into lookups against the second.
func (r *Registrar) Reset() {
	r.schema = nil
}

// objectType resolves name to an object type on schema. The returned error carries the given
// kind: resolving a declaring type and a dependent type fail differently.
func objectType(schema *graphql.Schema, name string, kind ErrKind, op Op) (graphql.Object, error) {
	t := (*schema).TypeMap().Lookup(name)
	object, ok := t.(graphql.Object)
	if !ok {
		return nil, NewError(
			`"`+name+`" is not a GraphQL object type in the schema`,
			kind, op,
		)
	}
	return object, nil
}
