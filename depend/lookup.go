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
	"github.com/botobag/linkage/depgraph"
)

const opDependency Op = "depend.Dependency"

// Dependency returns the engine's dependency handle for model's object type, resolved against the
// schema captured by the first successful declaration. It is meant to be called from field
// resolvers and loader callbacks, which by construction run after the schema was built.
//
// It fails with ErrKindSchemaNotInitialized when no declaration has resolved yet and with
// ErrKindInvalidTarget when model's name does not resolve to an object type on the captured
// schema. It performs no mutation.
func (r *Registrar) Dependency(model interface{}) (depgraph.Dependency, error) {
	return r.DependencyNamed(entityName(model))
}

// DependencyNamed is Dependency for an entity registered in the schema under an explicit name.
func (r *Registrar) DependencyNamed(name string) (depgraph.Dependency, error) {
	schema := r.schema
	if schema == nil {
		return nil, NewError(
			"schema is not initialized: no dependency declaration has been resolved yet",
			ErrKindSchemaNotInitialized, opDependency,
		)
	}

	target, err := objectType(schema, name, ErrKindInvalidTarget, opDependency)
	if err != nil {
		return nil, err
	}

	dependency, err := r.engine.Dependency(target)
	if err != nil {
		return nil, WrapErrorf(err, "cannot obtain the dependency handle for type %s", name)
	}
	return dependency, nil
}
