package glproc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

var glClear, glViewport byte

func fakeResolver(calls *[]string) Resolver {
	return ResolverFunc(func(name string) unsafe.Pointer {
		*calls = append(*calls, name)
		switch name {
		case "glClear":
			return unsafe.Pointer(&glClear)
		case "glViewport":
			return unsafe.Pointer(&glViewport)
		}
		return nil
	})
}

func TestLookupDelegatesToResolver(t *testing.T) {
	var calls []string
	ctx := NewContext(fakeResolver(&calls))
	defer ctx.Release()

	assert.Equal(t, unsafe.Pointer(&glClear), Lookup(ctx.Token(), "glClear"))
	assert.Equal(t, unsafe.Pointer(&glViewport), Lookup(ctx.Token(), "glViewport"))
	assert.Nil(t, Lookup(ctx.Token(), "glDoesNotExist"))
	assert.Equal(t, []string{"glClear", "glViewport", "glDoesNotExist"}, calls)
}

func TestLookupRejectsInvalidNames(t *testing.T) {
	var calls []string
	ctx := NewContext(fakeResolver(&calls))
	defer ctx.Release()

	assert.Nil(t, Lookup(ctx.Token(), "gl\xffClear"))
	assert.Nil(t, Lookup(ctx.Token(), ""))
	assert.Nil(t, Lookup(0, "glClear"))
	assert.Empty(t, calls, "resolver must not be called for undecodable names")
}

func TestReleaseIsIdempotent(t *testing.T) {
	ctx := NewContext(ResolverFunc(func(string) unsafe.Pointer { return nil }))
	assert.NotZero(t, ctx.Token())
	ctx.Release()
	ctx.Release()
	assert.Zero(t, ctx.Token())
}
