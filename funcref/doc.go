// Package funcref provides non-owning, type-erased references to callables.
//
// A Ref is not a callback container. A Ref is a tool that *forces the
// developer to ask*:
//
//	→ "Who owns this callable?"
//	→ "Does it outlive every call I will make through it?"
//
// That question is not about convenience—it's about lifetime and trust.
// A Ref never copies, never allocates, and never extends the life of what
// it points at. It is two words: an erased handle to the callable and a
// dispatcher with the exact signature.
//
// Features:
//   - Bind: zero-cost typed binding, signature inferred at the call site.
//   - BindAny / BindMethod: erased binding with a bind-time signature
//     check; rejection is an error, never a panic.
//   - Set / Reset / Swap / Bound: rebinding, unbinding, exchange, and the
//     single supported emptiness probe.
//
// Calling through an unbound Ref panics on the nil dispatcher. This is
// deliberate: invocation carries no check, so it stays as cheap as
// calling the func value directly. Check Bound first when emptiness is
// possible.
//
// The referenced callable's lifetime is entirely the caller's concern.
// Go's garbage collector keeps a bound callable alive while a Ref holds
// it, but a Ref bound to a callable whose state has been torn down
// (a closed channel, a released handle) will happily keep calling it.
//
// See ref_test.go and erased_test.go for usage.
package funcref
