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
	"fmt"

	"github.com/botobag/artemis/graphql"

	"github.com/botobag/linkage/depgraph"
)

// Relation declares, by field name, how dependent data attaches to the declaring type. It is the
// unresolved counterpart of depgraph.Relation: names here are resolved into field handles when
// the schema becomes ready.
type Relation struct {
	// As names the field on the declaring type under which the dependent data is attached.
	As string

	// Filter maps a field name on the dependent type to the field name on the declaring type
	// whose value selects the matching dependent rows.
	Filter map[string]string
}

// Require declares one dependent type together with the relations that attach its data.
type Require struct {
	// Type references the dependent entity. It is evaluated when the schema is ready.
	Type DependentType

	// Relations to register for the dependent type, in declaration order.
	Relations []Relation
}

// Options describes the complete dependency declaration for one entity type. It is supplied once
// per entity and consumed each time a schema build resolves the declaration.
type Options struct {
	// Require lists dependent types in the order their relations should be registered.
	Require []Require

	// Init, when non-nil, is forwarded to the engine as the type's initializer.
	Init depgraph.InitializerFunc

	// Load, when non-nil, is forwarded to the engine as the type's loader.
	Load depgraph.LoaderFunc
}

// Declare installs a schema-ready hook that resolves the declared dependencies for model's object
// type and registers them into the engine. model follows the same naming rule as To: the object
// type is looked up under the name of model's Go type.
//
// Nothing is validated at declaration time; the schema the declaration refers to does not exist
// yet. All resolution and validation happen inside SchemaReady.
func (r *Registrar) Declare(model interface{}, opts Options) {
	r.DeclareNamed(entityName(model), opts)
}

// DeclareNamed is Declare for an entity registered in the schema under an explicit name.
func (r *Registrar) DeclareNamed(name string, opts Options) {
	r.RegisterSchemaHook(&declaration{
		registrar: r,
		name:      name,
		opts:      opts,
	})
}

// declaration is the pending registration work for one entity type. It implements Hook; each
// instance registers once thanks to RegisterSchemaHook's identity check.
type declaration struct {
	registrar *Registrar
	name      string
	opts      Options
}

var _ Hook = (*declaration)(nil)

// requirement is a fully validated require-entry awaiting registration.
type requirement struct {
	dependent graphql.Type
	relations []depgraph.RelationFunc
}

const opDeclare Op = "depend.Declare"

// SchemaReady resolves the declaration against schema and registers it into the engine.
//
// Resolution is collect-then-commit: every type and field reference in the declaration is
// resolved and validated before the first engine call, so a declaration that fails validation
// leaves the engine untouched. Engine calls themselves are not transactional; if one fails, the
// ones already made stand.
func (d *declaration) SchemaReady(schema *graphql.Schema) error {
	// Resolve the declaring type. Failure aborts the whole declaration.
	target, err := objectType(schema, d.name, ErrKindInvalidTarget, opDeclare)
	if err != nil {
		return err
	}

	// The first declaration to resolve a type pins the schema for lookups.
	d.registrar.captureSchema(schema)

	targetFields := target.Fields()

	requirements := make([]requirement, 0, len(d.opts.Require))
	for _, require := range d.opts.Require {
		if require.Type == nil {
			return NewError(
				fmt.Sprintf("dependency declaration for type %s is missing a dependent type reference", d.name),
				ErrKindInvalidDependentType, opDeclare,
			)
		}

		ref := require.Type()
		dependent, err := objectType(schema, ref.Name, ErrKindInvalidDependentType, opDeclare)
		if err != nil {
			return err
		}
		dependentFields := dependent.Fields()

		relations := make([]depgraph.RelationFunc, 0, len(require.Relations))
		for _, relation := range require.Relations {
			resolved, err := d.resolveRelation(relation, targetFields, dependentFields, ref.Name)
			if err != nil {
				return err
			}
			relations = append(relations, resolved)
		}

		dependentType := graphql.Type(dependent)
		if ref.List {
			dependentType = graphql.MustNewListOfType(dependent)
		}

		requirements = append(requirements, requirement{
			dependent: dependentType,
			relations: relations,
		})
	}

	// Commit: everything below talks to the engine.
	dependency, err := d.registrar.engine.Dependency(target)
	if err != nil {
		return WrapErrorf(err, "cannot obtain the dependency handle for type %s", d.name)
	}

	for _, entry := range requirements {
		if err := dependency.Require(entry.dependent, entry.relations...); err != nil {
			return WrapErrorf(err, "cannot register relations of type %s", d.name)
		}
	}

	if d.opts.Init != nil {
		if err := dependency.DefineInitializer(d.opts.Init); err != nil {
			return WrapErrorf(err, "cannot register the initializer of type %s", d.name)
		}
	}

	if d.opts.Load != nil {
		if err := dependency.DefineLoader(d.opts.Load); err != nil {
			return WrapErrorf(err, "cannot register the loader of type %s", d.name)
		}
	}

	return nil
}

// resolveRelation validates one relation spec against the declaring and dependent field maps and
// returns the thunk producing its descriptor.
func (d *declaration) resolveRelation(
	relation Relation,
	targetFields graphql.FieldMap,
	dependentFields graphql.FieldMap,
	dependentName string) (depgraph.RelationFunc, error) {

	as, exists := targetFields[relation.As]
	if !exists {
		return nil, NewError(
			fmt.Sprintf("type %s does not define the relation target field %q", d.name, relation.As),
			ErrKindInvalidTargetField, opDeclare,
		)
	}

	filter := make(map[string]graphql.Field, len(relation.Filter))
	for foreignName, localName := range relation.Filter {
		if _, exists := dependentFields[foreignName]; !exists {
			return nil, NewError(
				fmt.Sprintf("dependent type %s does not define the foreign field %q", dependentName, foreignName),
				ErrKindInvalidForeignField, opDeclare,
			)
		}

		local, exists := targetFields[localName]
		if !exists {
			return nil, NewError(
				fmt.Sprintf("type %s does not define the local field %q", d.name, localName),
				ErrKindInvalidLocalField, opDeclare,
			)
		}

		// The engine consumes the resolved local field handle, keyed by the foreign field name.
		filter[foreignName] = local
	}

	resolved := depgraph.Relation{
		As:     as,
		Filter: filter,
	}
	return func() depgraph.Relation { return resolved }, nil
}
