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

package depend_test

import (
	"errors"

	"github.com/botobag/artemis/graphql"

	"github.com/botobag/linkage/depend"
	"github.com/botobag/linkage/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// recordingHook appends itself to a shared log on every invocation. Hooks of this type have
// comparable identity (pointer), matching the hooks installed by Declare.
type recordingHook struct {
	name    string
	log     *[]string
	schemas []*graphql.Schema
	err     error
}

func (hook *recordingHook) SchemaReady(schema *graphql.Schema) error {
	*hook.log = append(*hook.log, hook.name)
	hook.schemas = append(hook.schemas, schema)
	return hook.err
}

var _ = Describe("Schema-ready hooks", func() {
	var (
		registrar *depend.Registrar
		schema    *graphql.Schema
		log       []string
	)

	BeforeEach(func() {
		var err error
		registrar, err = depend.New(testutil.NewEngine())
		Expect(err).ShouldNot(HaveOccurred())

		schema = buildSchema(newAccountType())
		log = nil
	})

	It("rejects construction without an engine", func() {
		_, err := depend.New(nil)
		Expect(err).Should(HaveOccurred())
	})

	It("runs hooks in registration order", func() {
		first := &recordingHook{name: "first", log: &log}
		second := &recordingHook{name: "second", log: &log}
		registrar.RegisterSchemaHook(first)
		registrar.RegisterSchemaHook(second)

		Expect(registrar.SchemaReady(schema)).Should(Succeed())
		Expect(log).Should(Equal([]string{"first", "second"}))
		Expect(first.schemas).Should(Equal([]*graphql.Schema{schema}))
	})

	It("registers the same hook value only once", func() {
		hook := &recordingHook{name: "hook", log: &log}
		registrar.RegisterSchemaHook(hook)
		registrar.RegisterSchemaHook(hook)

		Expect(registrar.SchemaReady(schema)).Should(Succeed())
		Expect(log).Should(Equal([]string{"hook"}))
	})

	It("keeps distinct hook values of the same type", func() {
		registrar.RegisterSchemaHook(&recordingHook{name: "one", log: &log})
		registrar.RegisterSchemaHook(&recordingHook{name: "two", log: &log})

		Expect(registrar.SchemaReady(schema)).Should(Succeed())
		Expect(log).Should(HaveLen(2))
	})

	It("never deduplicates HookFunc values", func() {
		// Func values have no comparable identity; both registrations stay.
		hook := depend.HookFunc(func(schema *graphql.Schema) error {
			log = append(log, "fn")
			return nil
		})
		registrar.RegisterSchemaHook(hook)
		registrar.RegisterSchemaHook(hook)

		Expect(registrar.SchemaReady(schema)).Should(Succeed())
		Expect(log).Should(Equal([]string{"fn", "fn"}))
	})

	It("stops at the first failing hook", func() {
		hookErr := errors.New("hook failed")
		registrar.RegisterSchemaHook(&recordingHook{name: "first", log: &log})
		registrar.RegisterSchemaHook(&recordingHook{name: "failing", log: &log, err: hookErr})
		registrar.RegisterSchemaHook(&recordingHook{name: "after", log: &log})

		Expect(registrar.SchemaReady(schema)).Should(MatchError(hookErr))
		Expect(log).Should(Equal([]string{"first", "failing"}))
	})

	It("replays every hook for a second schema build", func() {
		hook := &recordingHook{name: "hook", log: &log}
		registrar.RegisterSchemaHook(hook)

		rebuilt := buildSchema(newAccountType())
		Expect(registrar.SchemaReady(schema)).Should(Succeed())
		Expect(registrar.SchemaReady(rebuilt)).Should(Succeed())

		Expect(hook.schemas).Should(Equal([]*graphql.Schema{schema, rebuilt}))
	})

	It("rejects a nil schema", func() {
		Expect(registrar.SchemaReady(nil)).Should(HaveOccurred())
	})
})
