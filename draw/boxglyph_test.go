package draw

import "testing"

func TestGlyphForSidesSingle(t *testing.T) {
	if g := GlyphForSides(' ', Up|Down); g != '│' {
		t.Errorf("Up|Down from blank: got %q, want '│'", g)
	}
	if g := GlyphForSides(' ', Left|Right); g != '─' {
		t.Errorf("Left|Right from blank: got %q, want '─'", g)
	}
}

func TestGlyphForSidesMergesExisting(t *testing.T) {
	// Starting from a corner '┐' (Down|Left), adding Up should merge
	// into the T-junction '┤' (Up|Down|Left).
	g := GlyphForSides('┐', Up)
	if g != '┤' {
		t.Errorf("merge Down|Left + Up: got %q, want '┤'", g)
	}
}

func TestGlyphForSidesOverlappingSidesUnion(t *testing.T) {
	g := GlyphForSides('┌', Down|Right|Up)
	// '┌' is Down|Right; merging Down|Right|Up gives Up|Down|Right ('├'),
	// but since Down|Right is already part of the merge, the union with
	// the added sides is Up|Down|Right which maps to '├'.
	if g != '├' {
		t.Errorf("merge Down|Right + Up|Down|Right: got %q, want '├'", g)
	}
}

func TestGlyphForSidesUnrecognizedRuneTreatedAsBlank(t *testing.T) {
	g := GlyphForSides('?', Up)
	if g != '╵' {
		t.Errorf("unrecognized existing rune + Up: got %q, want '╵'", g)
	}
}
