package invoke

import "reflect"

// Satisfies reports whether a callable of type cand may stand in for the
// signature want.
//
// Rules:
//   - want must be a non-variadic func type. A variadic signature cannot
//     be forwarded faithfully through a fixed trampoline, so it is
//     rejected outright.
//   - result types must match exactly, position by position.
//   - each declared argument type must be assignable to the candidate's
//     corresponding parameter. A variadic candidate is accepted when the
//     fixed parameters line up and every remaining declared argument is
//     assignable to the variadic element type.
//
// Any candidate that is not a func type, or not invocable with the
// declared arguments, yields false. Satisfies never panics; a failed
// check is an answer, not an error.
func Satisfies(cand, want reflect.Type) bool {
	if cand == nil || want == nil {
		return false
	}
	if cand.Kind() != reflect.Func || want.Kind() != reflect.Func {
		return false
	}
	if want.IsVariadic() {
		return false
	}

	if cand.NumOut() != want.NumOut() {
		return false
	}
	for i := 0; i < want.NumOut(); i++ {
		if cand.Out(i) != want.Out(i) {
			return false
		}
	}

	if !cand.IsVariadic() {
		if cand.NumIn() != want.NumIn() {
			return false
		}
		for i := 0; i < want.NumIn(); i++ {
			if !want.In(i).AssignableTo(cand.In(i)) {
				return false
			}
		}
		return true
	}

	fixed := cand.NumIn() - 1
	if want.NumIn() < fixed {
		return false
	}
	for i := 0; i < fixed; i++ {
		if !want.In(i).AssignableTo(cand.In(i)) {
			return false
		}
	}
	elem := cand.In(fixed).Elem()
	for i := fixed; i < want.NumIn(); i++ {
		if !want.In(i).AssignableTo(elem) {
			return false
		}
	}
	return true
}

// Trampoline adapts fn to the exact signature want. When the types
// already match the callable itself is the trampoline; otherwise a
// dispatcher of type want is synthesized once, forwarding through
// fn.Call. The caller must have established Satisfies(fn.Type(), want).
func Trampoline(want reflect.Type, fn reflect.Value) reflect.Value {
	if fn.Type() == want {
		return fn
	}
	return reflect.MakeFunc(want, func(args []reflect.Value) []reflect.Value {
		return fn.Call(args)
	})
}
