package id

import "testing"

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
	if !Valid(first) || !Valid(second) {
		t.Fatalf("expected valid uuids, got %q and %q", first, second)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "0b8f5d2e-3c4a-4e57-9a43-6a1f6f3c2d10", want: true},
		{in: "not-a-uuid", want: false},
		{in: "", want: false},
		{in: "urn:uuid:0b8f5d2e-3c4a-4e57-9a43-6a1f6f3c2d10", want: false},
	}

	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Fatalf("Valid(%q)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
