package gfont

import "testing"

func TestFaces(t *testing.T) {
	size := LabelSize(120)
	if size != 20 {
		t.Fatalf("LabelSize(120) = %v", size)
	}
	if LabelSize(12) != 8 {
		t.Fatal("label size not clamped")
	}

	label, err := Label(size)
	if err != nil {
		t.Fatal(err)
	}
	snap, err := Snapshot(size)
	if err != nil {
		t.Fatal(err)
	}
	if label.Metrics().Height <= 0 || snap.Metrics().Height <= 0 {
		t.Fatal("faces without height")
	}
	if _, ok := snap.GlyphAdvance('a'); !ok {
		t.Fatal("snapshot face has no glyph for 'a'")
	}
}
