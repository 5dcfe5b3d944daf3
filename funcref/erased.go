package funcref

import (
	"fmt"
	"reflect"

	"github.com/rbrugo/funcref_go/funcref/internal/invoke"
)

// Sentinel errors for the erased binding path. The typed path (Bind, Set)
// has no error channel: its argument is the signature, so mismatches are
// compile errors.
var (
	// ErrNilCallable reports a nil callable or receiver.
	ErrNilCallable = invoke.ErrNilCallable

	// ErrNotAFunc reports a callable that is not a func value.
	ErrNotAFunc = invoke.ErrNotAFunc

	// ErrNoSuchMethod reports a receiver without the requested method.
	ErrNoSuchMethod = invoke.ErrNoSuchMethod

	// ErrSignatureMismatch reports a callable that is not invocable as F.
	ErrSignatureMismatch = fmt.Errorf("funcref: callable does not satisfy signature")
)

// BindAny binds a callable whose type is not known at compile time.
//
// callable must be a func value invocable as F: result types exactly
// equal, each of F's argument types assignable to the corresponding
// parameter. A callable that does not satisfy the signature is rejected
// with ErrSignatureMismatch; the check swallows every shape mismatch
// rather than panicking.
//
// Passing a Ref[F] returns a copy of it — a reference never wraps
// another reference of its own signature.
func BindAny[F any](callable any) (Ref[F], error) {
	want := mustBeFuncType[F]()
	if ref, ok := callable.(Ref[F]); ok {
		return ref, nil
	}
	fn, err := invoke.Func(callable)
	if err != nil {
		return Ref[F]{}, err
	}
	return bindValue[F](callable, want, fn)
}

// BindMethod binds the method of recv named name.
//
// This is the member form of binding: the receiver is the target, and the
// trampoline dispatches to its method. Methods promoted from embedded
// types and methods on pointer receivers both resolve; for the latter,
// later mutation of recv's state is observed by every call.
func BindMethod[F any](recv any, name string) (Ref[F], error) {
	want := mustBeFuncType[F]()
	m, err := invoke.Method(recv, name)
	if err != nil {
		return Ref[F]{}, err
	}
	return bindValue[F](recv, want, m)
}

func bindValue[F any](target any, want reflect.Type, fn reflect.Value) (Ref[F], error) {
	if fn.Type() == want {
		return Ref[F]{target: target, trampoline: fn.Interface().(F)}, nil
	}
	if !invoke.Satisfies(fn.Type(), want) {
		return Ref[F]{}, fmt.Errorf("%w: have %v, want %v", ErrSignatureMismatch, fn.Type(), want)
	}
	tramp := invoke.Trampoline(want, fn).Interface().(F)
	return Ref[F]{target: target, trampoline: tramp}, nil
}
