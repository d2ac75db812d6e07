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

	"github.com/botobag/artemis/graphql"
)

// Hook is deferred work that runs once a schema has been built. Hooks are registered before the
// schema exists and replayed against every schema handed to Registrar.SchemaReady, so they must
// not retain the schema across invocations.
type Hook interface {
	SchemaReady(schema *graphql.Schema) error
}

// HookFunc is an adapter to allow the use of ordinary functions as Hook.
type HookFunc func(schema *graphql.Schema) error

// SchemaReady calls f(schema).
func (f HookFunc) SchemaReady(schema *graphql.Schema) error {
	return f(schema)
}

// HookFunc implements Hook.
var _ Hook = HookFunc(nil)

// sameHook reports whether a and b are the same hook value. Identity is interface equality,
// restricted to comparable dynamic types: a HookFunc (func values are not comparable in Go) is
// never considered identical to another hook, not even to itself.
func sameHook(a, b Hook) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
