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
	"reflect"
)

// TypeRef is a symbolic reference to a schema object type: the type's name plus whether the
// relation attaches a list of the type or a single value.
type TypeRef struct {
	// Name of the object type to look up in the schema's type map.
	Name string

	// List is true when the reference denotes "list of" the named type.
	List bool
}

// DependentType names the schema object type a relation points at. It is a thunk evaluated only
// when the schema is ready, so a declaration may reference an entity whose own declaration runs
// later in program initialization.
type DependentType func() TypeRef

// To references the object type named after model's Go type. A relation built from it attaches a
// single dependent value.
func To(model interface{}) DependentType {
	return func() TypeRef {
		return TypeRef{Name: entityName(model)}
	}
}

// ListOf is like To but denotes a list of the referenced type.
func ListOf(model interface{}) DependentType {
	return func() TypeRef {
		return TypeRef{Name: entityName(model), List: true}
	}
}

// ToNamed references the object type with the given schema name directly, for entities that are
// not backed by a Go type.
func ToNamed(name string) DependentType {
	return func() TypeRef {
		return TypeRef{Name: name}
	}
}

// ListOfNamed is like ToNamed but denotes a list of the referenced type.
func ListOfNamed(name string) DependentType {
	return func() TypeRef {
		return TypeRef{Name: name, List: true}
	}
}

// entityName derives the schema type name for model: the name of its Go type with any pointer
// indirections stripped. This mirrors how reflection-based type builders name the object types
// they produce; an entity registered under a different name must be referenced with ToNamed.
func entityName(model interface{}) string {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
