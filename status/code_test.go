package status

import "testing"

func TestStatusCode_ZeroValue(t *testing.T) {
	var c StatusCode[Foo]
	if !c.Empty() {
		t.Error("zero value should be empty")
	}
	if c.Success() || c.Failure() {
		t.Error("empty code is neither success nor failure")
	}
	if c.Domain() != nil {
		t.Errorf("expected nil domain, got %v", c.Domain())
	}
	if c.Generic() != Unknown {
		t.Errorf("expected Unknown, got %v", c.Generic())
	}
	if c.Message() != "(empty)" {
		t.Errorf("unexpected message %q", c.Message())
	}
}

func TestStatusCode_New(t *testing.T) {
	tests := []struct {
		name    string
		value   Foo
		success bool
		generic Errc
	}{
		{"ok", FooOK, true, Success},
		{"bad input", FooBadInput, false, InvalidArgument},
		{"overflow", FooOverflow, false, ValueTooLarge},
		{"unmapped", FooUnmapped, false, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(foos, tt.value)
			if c.Empty() {
				t.Fatal("code should not be empty")
			}
			if c.Success() != tt.success || c.Failure() == tt.success {
				t.Errorf("success = %v, failure = %v, want success %v", c.Success(), c.Failure(), tt.success)
			}
			if c.Value() != tt.value {
				t.Errorf("expected value %d, got %d", tt.value, c.Value())
			}
			if c.Generic() != tt.generic {
				t.Errorf("expected generic %v, got %v", tt.generic, c.Generic())
			}
		})
	}
}

func TestStatusCode_String(t *testing.T) {
	c := GenericCode(InvalidArgument)
	if got := c.String(); got != "generic domain: Invalid argument" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestStatusCode_Clear(t *testing.T) {
	c := New(foos, FooBadInput)
	c.Clear()
	if !c.Empty() {
		t.Error("expected empty code after Clear")
	}
}

func TestEmplace(t *testing.T) {
	sum := func(args ...int) Foo {
		n := 0
		for _, a := range args {
			n += a
		}
		return Foo(n)
	}
	c := Emplace(foos, sum, 1, 1)
	if c.Value() != FooOverflow {
		t.Errorf("expected FooOverflow, got %d", c.Value())
	}

	pick := func(list []Foo, args ...int) Foo { return list[args[0]] }
	c = EmplaceList(foos, pick, []Foo{FooOK, FooBadInput}, 1)
	if c.Value() != FooBadInput {
		t.Errorf("expected FooBadInput, got %d", c.Value())
	}
}

func TestValueAs(t *testing.T) {
	c := New(foos, FooOverflow)
	if v, ok := ValueAs[Foo](c); !ok || v != FooOverflow {
		t.Errorf("ValueAs from code = %d, %v", v, ok)
	}
	if v, ok := ValueAs[Foo](FromCode(c)); !ok || v != FooOverflow {
		t.Errorf("ValueAs from errored = %d, %v", v, ok)
	}
	if v, ok := ValueAs[Foo](Erase(c)); !ok || v != FooOverflow {
		t.Errorf("ValueAs through erasure = %d, %v", v, ok)
	}
	if _, ok := ValueAs[Errc](c); ok {
		t.Error("ValueAs should reject the wrong value type")
	}
	if _, ok := ValueAs[Foo](nil); ok {
		t.Error("ValueAs should reject nil")
	}
	if _, ok := ValueAs[Foo](StatusCode[Foo]{}); ok {
		t.Error("ValueAs should reject an empty code")
	}
}

func TestStatusCode_NonErasableValue(t *testing.T) {
	c := New(records, record{code: int(NoSuchFileOrDirectory), path: "/etc/missing"})
	if !c.Failure() {
		t.Fatal("expected failure")
	}
	e := FromCode(c)
	if e.Value().path != "/etc/missing" {
		t.Errorf("unexpected path %q", e.Value().path)
	}
	if !EqualErrc(e, NoSuchFileOrDirectory) {
		t.Error("record code should map onto its generic condition")
	}
}
