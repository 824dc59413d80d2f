package status

import (
	"errors"
	"testing"
)

func TestErase_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code StatusCode[Foo]
	}{
		{"bad input", New(foos, FooBadInput)},
		{"overflow", New(foos, FooOverflow)},
		{"unmapped", New(foos, FooUnmapped)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			erased := Erase(tt.code)
			if erased.Domain().ID() != fooID {
				t.Errorf("erasure changed the domain id to %v", erased.Domain().ID())
			}
			if erased.Message() != tt.code.Message() {
				t.Errorf("erasure changed the message to %q", erased.Message())
			}
			back, err := Unerase[Foo](erased)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if back.Value() != tt.code.Value() {
				t.Errorf("expected %d, got %d", tt.code.Value(), back.Value())
			}
			if !SameDomain(back.Domain(), foos) {
				t.Errorf("unexpected domain %v", back.Domain())
			}
		})
	}
}

func TestErase_Unsigned(t *testing.T) {
	back, err := Unerase[uint16](Erase(New(httpCodes, 504)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Value() != 504 {
		t.Errorf("expected 504, got %d", back.Value())
	}
	if !EqualErrc(back, TimedOut) {
		t.Error("expected reconstructed code to keep its generic mapping")
	}
}

func TestUnerase_Mismatch(t *testing.T) {
	erased := Erase(New(foos, FooBadInput))
	if _, err := Unerase[uint16](erased); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
	if _, err := Unerase[Errc](erased); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
}

func TestUnerase_Empty(t *testing.T) {
	c, err := UneraseCode[Foo](StatusCode[Erased]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Empty() {
		t.Error("expected empty code")
	}
}

// erasedNative is a domain whose values are already payloads.
type erasedNative struct{}

func (erasedNative) ID() DomainID { return 0x1111 }
func (erasedNative) Name() string { return "native erased domain" }
func (erasedNative) Failure(p Erased) bool { return p != 0 }
func (erasedNative) Generic(p Erased) Errc { return Errc(p) }
func (erasedNative) Message(p Erased) string { return Errc(p).Message() }
func (erasedNative) Equivalent(Erased, Code) bool { return false }

func TestErase_AlreadyErased(t *testing.T) {
	c := New[Erased](erasedNative{}, Erased(IOError))
	if got := EraseCode(c); got != c {
		t.Error("erasing an erased code should return it unchanged")
	}
	back, err := UneraseCode[Erased](c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != c {
		t.Error("expected the native code back")
	}
	if _, err := UneraseCode[Foo](c); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
}

func TestUnerase_ToErased(t *testing.T) {
	tests := []struct {
		name string
		code StatusCode[Erased]
	}{
		{"erased foreign code", EraseCode(New(foos, FooBadInput))},
		{"erased generic code", EraseCode(GenericCode(TimedOut))},
		{"native erased code", New[Erased](erasedNative{}, Erased(IOError))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back, err := UneraseCode[Erased](tt.code)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if back != tt.code {
				t.Error("expected the erased code back unchanged")
			}
		})
	}

	e, err := Unerase[Erased](Erase(New(foos, FooOverflow)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !EqualErrc(e, ValueTooLarge) {
		t.Errorf("expected ValueTooLarge, got %v", e.Generic())
	}
}

func TestEraseErrored(t *testing.T) {
	e := FromErrc(ConnectionReset)
	erased := EraseErrored(e)
	if !Equal(erased, e) {
		t.Error("erased and concrete codes should be equal")
	}
	if !EqualErrc(erased, ConnectionReset) {
		t.Error("expected erased code to equal ConnectionReset")
	}
	if erased.Value() != Erased(ConnectionReset) {
		t.Errorf("unexpected payload %d", erased.Value())
	}
}
