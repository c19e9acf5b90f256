package overlay

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseAnchor_AllNames(t *testing.T) {
	for _, a := range Anchors() {
		got, err := ParseAnchor(a.String())
		if err != nil {
			t.Fatalf("ParseAnchor(%q) failed: %v", a.String(), err)
		}
		if got != a {
			t.Errorf("ParseAnchor(%q): got %v, want %v", a.String(), got, a)
		}
	}
	if len(Anchors()) != 14 {
		t.Errorf("anchor count: got %d, want 14", len(Anchors()))
	}
}

func TestParseAnchor_Lenient(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"Outside-Top-Center", OutsideTopCenter},
		{"  inside_bottom_right ", InsideBottomRight},
		{"OUTSIDE_LEFT", OutsideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if err != nil {
				t.Fatalf("ParseAnchor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAnchor_Invalid(t *testing.T) {
	_, err := ParseAnchor("middle")
	if err == nil {
		t.Fatal("expected error for unknown anchor")
	}
	if !errors.Is(err, ErrInvalidAnchor) {
		t.Errorf("error should wrap ErrInvalidAnchor: %v", err)
	}
	for _, name := range AnchorNames() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list %q: %v", name, err)
		}
	}
}

func TestAnchor_Inside(t *testing.T) {
	tests := []struct {
		in, want Anchor
	}{
		{OutsideTopLeft, InsideTopLeft},
		{OutsideTopCenter, InsideTopCenter},
		{OutsideTopRight, InsideTopRight},
		{OutsideBottomLeft, InsideBottomLeft},
		{OutsideBottomCenter, InsideBottomCenter},
		{OutsideBottomRight, InsideBottomRight},
		{OutsideLeft, InsideTopLeft},
		{OutsideRight, InsideTopRight},
		{InsideBottomCenter, InsideBottomCenter},
	}

	for _, tt := range tests {
		if got := tt.in.Inside(); got != tt.want {
			t.Errorf("%v.Inside(): got %v, want %v", tt.in, got, tt.want)
		}
		if tt.in.Inside().IsOutside() {
			t.Errorf("%v.Inside() is still an outside anchor", tt.in)
		}
	}
}

func TestAnchor_IsOutside(t *testing.T) {
	for _, a := range Anchors() {
		want := strings.HasPrefix(a.String(), "outside")
		if a.IsOutside() != want {
			t.Errorf("%v.IsOutside(): got %v, want %v", a, a.IsOutside(), want)
		}
	}
}

func TestAnchor_JSON(t *testing.T) {
	var v struct {
		Anchor Anchor `json:"anchor"`
	}
	if err := json.Unmarshal([]byte(`{"anchor":"outside_right"}`), &v); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if v.Anchor != OutsideRight {
		t.Errorf("got %v, want outside_right", v.Anchor)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"anchor":"outside_right"}` {
		t.Errorf("Marshal: got %s", out)
	}

	if err := json.Unmarshal([]byte(`{"anchor":"nowhere"}`), &v); !errors.Is(err, ErrInvalidAnchor) {
		t.Errorf("expected ErrInvalidAnchor, got %v", err)
	}
}

func TestAnchor_StringInvalid(t *testing.T) {
	a := Anchor(99)
	if a.Valid() {
		t.Error("Anchor(99) should not be valid")
	}
	if a.String() != "Anchor(99)" {
		t.Errorf("String: got %q", a.String())
	}
}
