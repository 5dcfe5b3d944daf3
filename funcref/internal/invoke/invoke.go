// Package invoke normalizes the callable shapes funcref accepts into one
// reflect-based calling convention.
//
// Two shapes exist: plain callables (func values of any signature) and
// member callables (a receiver paired with one of its methods). Each has
// its own resolver, chosen statically at the call site; exactly one
// applies to any given callable shape.
package invoke

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilCallable is returned when the callable or receiver is nil.
	ErrNilCallable = errors.New("invoke: nil callable")

	// ErrNotAFunc is returned when a plain callable is not a func value.
	ErrNotAFunc = errors.New("invoke: not a function value")

	// ErrNoSuchMethod is returned when the receiver has no method of the
	// requested name in its method set.
	ErrNoSuchMethod = errors.New("invoke: no such method")
)

// Func resolves a plain callable into its reflect func value.
func Func(callable any) (reflect.Value, error) {
	if callable == nil {
		return reflect.Value{}, ErrNilCallable
	}
	v := reflect.ValueOf(callable)
	if v.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotAFunc, callable)
	}
	if v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNilCallable, callable)
	}
	return v, nil
}

// Method resolves the member form: the method of recv named name, already
// bound to recv. Pointer receivers keep sharing the receiver's state, so
// later mutation of recv is observed by calls through the result.
func Method(recv any, name string) (reflect.Value, error) {
	if recv == nil {
		return reflect.Value{}, ErrNilCallable
	}
	m := reflect.ValueOf(recv).MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: (%T).%s", ErrNoSuchMethod, recv, name)
	}
	return m, nil
}
