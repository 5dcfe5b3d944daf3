package funcref

import (
	"fmt"
	"reflect"
)

// Ref is a non-owning reference to a callable of signature F.
//
// F must be a function type; every constructor guards this. A Ref holds
// exactly two words: target, the erased handle to whatever was bound, and
// trampoline, a dispatcher of type F. For a typed Bind the trampoline is
// the callable itself. For an erased bind it is synthesized once, at bind
// time, for the concrete callable type.
//
// The zero Ref is unbound. Copying a Ref copies the two words; both
// copies dispatch to the same callable.
type Ref[F any] struct {
	target     any
	trampoline F
}

// New returns an unbound Ref. Equivalent to the zero value; use whichever
// reads better at the call site.
func New[F any]() Ref[F] {
	mustBeFuncType[F]()
	return Ref[F]{}
}

// Bind returns a Ref bound to fn.
//
// The signature is inferred from fn, so plain call sites need no type
// argument:
//
//	ref := funcref.Bind(func(x int) int { return x + 1 })
//
// Binding a nil func yields the unbound state. Bind panics if F is not a
// function type; that is a programming error in the instantiation, not a
// property of fn.
func Bind[F any](fn F) Ref[F] {
	mustBeFuncType[F]()
	if reflect.ValueOf(fn).IsNil() {
		return Ref[F]{}
	}
	return Ref[F]{target: fn, trampoline: fn}
}

// Set rebinds r to fn, replacing any prior binding. Setting a nil func
// resets r to the unbound state. The old target is never reachable from r
// afterwards.
func (r *Ref[F]) Set(fn F) {
	*r = Bind(fn)
}

// Reset returns r to the unbound state. Both words are cleared together.
func (r *Ref[F]) Reset() {
	*r = Ref[F]{}
}

// Swap exchanges the bindings of r and other. No invocation occurs and
// neither callable is touched.
func (r *Ref[F]) Swap(other *Ref[F]) {
	*r, *other = *other, *r
}

// Swap exchanges the bindings of a and b.
func Swap[F any](a, b *Ref[F]) {
	a.Swap(b)
}

// Bound reports whether r refers to a callable. This is the only
// supported emptiness probe; it reads the target word alone, which is nil
// exactly when the trampoline is nil.
func (r Ref[F]) Bound() bool {
	return r.target != nil
}

// Fn returns the dispatcher. Call it directly:
//
//	out := ref.Fn()(41)
//
// For an unbound Ref this is the nil func, and calling it panics. Fn
// itself performs no check; that is the cost model of the type.
func (r Ref[F]) Fn() F {
	return r.trampoline
}

// mustBeFuncType panics unless F is a function type.
func mustBeFuncType[F any]() reflect.Type {
	t := reflect.TypeOf((*F)(nil)).Elem()
	if t.Kind() != reflect.Func {
		panic(fmt.Sprintf("funcref: signature %v is not a function type", t))
	}
	return t
}
