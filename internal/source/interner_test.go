package source

import "testing"

func TestInternerDedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Errorf("same string interned to %d and %d", a, b)
	}
	c := in.Intern("bar")
	if c == a {
		t.Error("distinct strings share an ID")
	}
	if got := in.MustLookup(a); got != "foo" {
		t.Errorf("MustLookup = %q, want %q", got, "foo")
	}
	if got := in.MustLookup(c); got != "bar" {
		t.Errorf("MustLookup = %q, want %q", got, "bar")
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string interned to %d, want NoStringID", id)
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("Lookup(NoStringID) = %q, %v", s, ok)
	}
}

func TestInternerBytesCopies(t *testing.T) {
	in := NewInterner()
	buf := []byte("ident")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	if got := in.MustLookup(id); got != "ident" {
		t.Errorf("interned string aliased caller buffer: %q", got)
	}
}

func TestInternerInvalidID(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("Lookup of unknown ID succeeded")
	}
	if in.Has(StringID(99)) {
		t.Error("Has(99) on empty interner")
	}
}
