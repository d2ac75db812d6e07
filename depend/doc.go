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

// Package depend lets an application declare cross-entity data dependencies for an artemis
// GraphQL schema before the schema exists.
//
// Schemas assembled dynamically (e.g. by reflection-based type builders) are not available when
// entity types are being set up, yet that is the natural place to say "Account data attaches to
// Customer under the accounts field, joined on ownerId = id". Declare captures such a statement
// as pending work; when the schema builder finishes, it hands the schema to SchemaReady, which
// replays every declaration in order, resolves each symbolic type reference into concrete
// graphql.Object and graphql.Field handles, validates that every named field exists, and
// registers the resolved relations with the dependency-graph engine behind depgraph.Engine.
//
//	registrar, err := depend.New(engine)
//	...
//	registrar.Declare(Customer{}, depend.Options{
//		Require: []depend.Require{{
//			Type: depend.ListOf(Account{}),
//			Relations: []depend.Relation{{
//				As:     "accounts",
//				Filter: map[string]string{"ownerId": "id"},
//			}},
//		}},
//	})
//	...
//	schema, err := graphql.NewSchema(&config)
//	...
//	err = registrar.SchemaReady(schema)
//
// Resolvers and loaders that need a type's dependency handle at execution time obtain it through
// Dependency, which reads the schema captured during the first successful declaration.
//
// Validation failures are reported as *Error values carrying an ErrKind; they abort the failing
// declaration before it reaches the engine and propagate out of SchemaReady.
package depend
