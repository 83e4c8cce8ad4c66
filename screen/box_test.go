package screen

import "testing"

func TestNewBoxClampsNegativeDims(t *testing.T) {
	b := NewBox(1, 1, -3, -4)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected zeroed dims, got %+v", b)
	}
	if !b.Empty() {
		t.Error("zero-dim box should be empty")
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(2, 2, 3, 3)
	if !b.Contains(2, 2) {
		t.Error("top-left corner should be contained")
	}
	if b.Contains(5, 2) {
		t.Error("half-open box should exclude X+W")
	}
	if b.Contains(2, 5) {
		t.Error("half-open box should exclude Y+H")
	}
}

func TestClampIntersectsScreenBounds(t *testing.T) {
	s, _ := New(5)
	s.PutText("abcde\nfghij")
	clamped := s.Clamp(NewBox(-2, -1, 10, 10))
	if clamped.X != 0 || clamped.Y != 0 || clamped.W != 5 || clamped.H != s.Height() {
		t.Errorf("clamp: got %+v", clamped)
	}
}

func TestFullSpansEntireScreen(t *testing.T) {
	s, _ := New(5)
	s.PutText("abcde\nfghij")
	full := s.Full()
	if full.W != 5 || full.H != s.Height() {
		t.Errorf("Full: got %+v", full)
	}
}
