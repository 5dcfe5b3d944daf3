// Package calltable provides a named dispatch table for callable
// references.
//
// A Table maps names to funcref.Ref values of any signature. Lookups are
// typed: asking for a name under the wrong signature is a miss, not an
// error, so a caller can only ever dispatch through a reference whose
// signature it spelled out.
//
// Entries may carry a registration window. A windowed entry is visible
// only while the wall clock falls inside its span; Purge drops entries
// whose window has passed.
//
// Tables are safe for concurrent use. Entries are spread across a fixed
// number of shards by a hash of the name, so unrelated registrations do
// not contend.
//
// The references stored here keep their non-owning semantics: a Table
// holds the two words of each Ref and nothing else about the callable.
package calltable
