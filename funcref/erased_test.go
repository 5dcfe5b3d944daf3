package funcref_test

import (
	"fmt"
	"testing"

	"github.com/rbrugo/funcref_go/funcref"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindAnyExactSignature(t *testing.T) {
	ref, err := funcref.BindAny[func(int) int](func(x int) int { return x + 1 })
	require.NoError(t, err)
	assert.True(t, ref.Bound())
	assert.Equal(t, 42, ref.Fn()(41))
}

func TestBindAnyAssignableArguments(t *testing.T) {
	// The candidate takes any; the declared argument type int is
	// assignable to it, so the trait accepts and a trampoline adapts.
	stringify := func(v any) string { return fmt.Sprint(v) }

	ref, err := funcref.BindAny[func(int) string](stringify)
	require.NoError(t, err)
	assert.Equal(t, "7", ref.Fn()(7))
}

func TestBindAnyVariadicCandidate(t *testing.T) {
	sum := func(xs ...int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	}

	ref, err := funcref.BindAny[func(int, int) int](sum)
	require.NoError(t, err)
	assert.Equal(t, 3, ref.Fn()(1, 2))
}

func TestBindAnyRejectsResultMismatch(t *testing.T) {
	_, err := funcref.BindAny[func(int) int](func(x int) int64 { return int64(x) })
	assert.ErrorIs(t, err, funcref.ErrSignatureMismatch)
}

func TestBindAnyRejectsArityMismatch(t *testing.T) {
	_, err := funcref.BindAny[func(int) int](func(x, y int) int { return x + y })
	assert.ErrorIs(t, err, funcref.ErrSignatureMismatch)
}

func TestBindAnyRejectsNonFunc(t *testing.T) {
	_, err := funcref.BindAny[func(int) int](42)
	assert.ErrorIs(t, err, funcref.ErrNotAFunc)
}

func TestBindAnyRejectsNil(t *testing.T) {
	_, err := funcref.BindAny[func(int) int](nil)
	assert.ErrorIs(t, err, funcref.ErrNilCallable)

	var fn func(int) int
	_, err = funcref.BindAny[func(int) int](fn)
	assert.ErrorIs(t, err, funcref.ErrNilCallable)
}

func TestBindAnyOfRefCopiesInsteadOfWrapping(t *testing.T) {
	inner := funcref.Bind(func(x int) int { return x + 1 })

	outer, err := funcref.BindAny[func(int) int](inner)
	require.NoError(t, err)
	assert.Equal(t, 42, outer.Fn()(41))

	// A copy, not a wrapper: rebinding the inner ref must not change
	// what the outer one dispatches to.
	inner.Set(func(x int) int { return x * 2 })
	assert.Equal(t, 42, outer.Fn()(41))
}

func TestBindMethod(t *testing.T) {
	c := &counter{}
	ref, err := funcref.BindMethod[func(int) int](c, "Incr")
	require.NoError(t, err)

	assert.Equal(t, 5, ref.Fn()(5))
	assert.Equal(t, 7, ref.Fn()(2))
	assert.Equal(t, 7, c.n)
}

func TestBindMethodObservesReceiverMutation(t *testing.T) {
	c := &counter{}
	ref, err := funcref.BindMethod[func(int) int](c, "Incr")
	require.NoError(t, err)

	c.n = 40
	assert.Equal(t, 41, ref.Fn()(1))
}

func TestBindMethodUnknownName(t *testing.T) {
	_, err := funcref.BindMethod[func(int) int](&counter{}, "Decr")
	assert.ErrorIs(t, err, funcref.ErrNoSuchMethod)
}

func TestBindMethodSignatureMismatch(t *testing.T) {
	_, err := funcref.BindMethod[func(string) string](&counter{}, "Incr")
	assert.ErrorIs(t, err, funcref.ErrSignatureMismatch)
}

func TestBindMethodNilReceiver(t *testing.T) {
	_, err := funcref.BindMethod[func(int) int](nil, "Incr")
	assert.ErrorIs(t, err, funcref.ErrNilCallable)
}

func TestBindAnyVariadicSignatureExactOnly(t *testing.T) {
	// A variadic signature binds only to a callable of the identical
	// type; nothing else can be forwarded through it faithfully.
	sum := func(xs ...int) int { return len(xs) }
	ref, err := funcref.BindAny[func(...int) int](sum)
	require.NoError(t, err)
	assert.Equal(t, 3, ref.Fn()(1, 2, 3))

	_, err = funcref.BindAny[func(...int) int](func(xs []int) int { return len(xs) })
	assert.ErrorIs(t, err, funcref.ErrSignatureMismatch)
}
