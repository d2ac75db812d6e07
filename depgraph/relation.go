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

package depgraph

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/botobag/artemis/graphql"

	"github.com/json-iterator/go"
)

// Relation is a resolved relation descriptor: the structural link between two object types that
// an Engine consumes. As is the field on the declaring type under which dependent data is
// attached. Filter maps a field name on the dependent type to the field handle on the declaring
// type whose value selects the matching dependent rows. Every handle in a Relation refers to a
// field that exists on its schema type; the depend package validates this before building one.
type Relation struct {
	As     graphql.Field
	Filter map[string]graphql.Field
}

// filterNames returns the foreign field names in the filter in deterministic order.
func (relation *Relation) filterNames() []string {
	names := make([]string, 0, len(relation.Filter))
	for name := range relation.Filter {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String serializes a Relation to a compact readable format such as "b(id=bId)". It appears in
// error messages reported for failed engine registrations.
func (relation Relation) String() string {
	var b strings.Builder
	if relation.As != nil {
		b.WriteString(relation.As.Name())
	}
	b.WriteRune('(')
	for i, name := range relation.filterNames() {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(name)
		b.WriteRune('=')
		b.WriteString(relation.Filter[name].Name())
	}
	b.WriteRune(')')
	return b.String()
}

// relationMarshaller implements jsoniter.ValEncoder to encode Relation to JSON.
type relationMarshaller struct{}

var _ jsoniter.ValEncoder = relationMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (relationMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	relation := (*Relation)(ptr)
	return relation.As == nil && len(relation.Filter) == 0
}

// Encode implements jsoniter.ValEncoder.
func (relationMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	relation := (*Relation)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("as")
	if relation.As != nil {
		stream.WriteString(relation.As.Name())
	} else {
		stream.WriteNil()
	}

	if len(relation.Filter) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("filter")
		stream.WriteObjectStart()
		names := relation.filterNames()
		for i, name := range names {
			stream.WriteObjectField(name)
			stream.WriteString(relation.Filter[name].Name())
			if i != len(names)-1 {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

// MarshalJSON implements json.Marshaler.
func (relation Relation) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(relation)
}

func init() {
	jsoniter.RegisterTypeEncoder("depgraph.Relation", relationMarshaller{})
}
