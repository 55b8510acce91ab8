package assets

import "testing"

func TestCatalogCoversHandles(t *testing.T) {
	for _, img := range []Image{Ship, Enemy, Shot, Power, Heart, Tutorial} {
		s, ok := Lookup(img)
		if !ok {
			t.Errorf("Lookup(%q) missing", img)
			continue
		}
		if s.W <= 0 || s.H <= 0 {
			t.Errorf("sprite %q has size %dx%d", img, s.W, s.H)
		}
		for _, p := range s.Outline {
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Errorf("sprite %q outline point %v outside unit box", img, p)
			}
		}
	}
	if len(All()) != 6 {
		t.Errorf("All() returned %d handles, expected 6", len(All()))
	}
}

func TestMeasureText(t *testing.T) {
	tests := []struct {
		text string
		font Font
		w, h float64
	}{
		{"", Monospace60, 0, 60},
		{"Play", Monospace60, 144, 60},
		{"Ünï", Sans50, 90, 50},
	}

	for _, tc := range tests {
		got := MeasureText(tc.text, tc.font)
		if got.X != tc.w || got.Y != tc.h {
			t.Errorf("MeasureText(%q) = %v, expected (%v, %v)", tc.text, got, tc.w, tc.h)
		}
	}
	if Size("missing").Length() != 0 {
		t.Error("Size() of unknown image should be zero")
	}
}
