package quantize

import (
	"errors"
	"testing"

	"github.com/patrick-goecommerce/ansiscreen/ansierr"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/palette"
)

func TestNewUnknownKind(t *testing.T) {
	p := palette.NewCGA16()
	_, err := New(Kind("bogus"), p)
	if !errors.Is(err, ansierr.ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig, got %v", err)
	}
}

func TestNewMonochromeRequiresTwoEntries(t *testing.T) {
	p := palette.NewCGA16()
	if _, err := New(Monochrome, p); !errors.Is(err, ansierr.ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig for 16-entry palette, got %v", err)
	}

	mono, err := palette.New([]color.RGB{color.Black, color.White})
	if err != nil {
		t.Fatalf("building 2-entry palette: %v", err)
	}
	if _, err := New(Monochrome, mono); err != nil {
		t.Fatalf("expected monochrome strategy to build, got %v", err)
	}
}

func TestExactStrategyFallsBackToNearest(t *testing.T) {
	p := palette.NewCGA16()
	s, err := New(Exact, p)
	if err != nil {
		t.Fatal(err)
	}

	// Exact CGA red round-trips to its own index.
	idx := s.Quantize(palette.CGAColors[1])
	if idx != 1 {
		t.Errorf("exact lookup for CGA red: got %d, want 1", idx)
	}

	// A color absent from CGA16 still resolves to some index (total
	// function via nearest-RGB fallback).
	idx = s.Quantize(color.RGB{10, 200, 30})
	if idx < 0 || idx > 15 {
		t.Errorf("fallback quantize out of range: %d", idx)
	}
}

func TestNearestRGBPicksClosest(t *testing.T) {
	p := palette.NewCGA16()
	s, err := New(NearestRGB, p)
	if err != nil {
		t.Fatal(err)
	}
	// Slightly off pure green should still land on CGA green (index 2).
	idx := s.Quantize(color.RGB{5, 0xa5, 5})
	if idx != 2 {
		t.Errorf("nearest-RGB for near-green: got %d, want 2", idx)
	}
}

func TestNearestHSVPrefersHueMatch(t *testing.T) {
	p := palette.NewCGA16()
	s, err := New(NearestHSV, p)
	if err != nil {
		t.Fatal(err)
	}
	// A dim red should still match CGA red (index 1) by hue over
	// brightness-nearer but hue-distant colors.
	idx := s.Quantize(color.RGB{0x55, 0x00, 0x00})
	if idx != 1 {
		t.Errorf("nearest-HSV for dim red: got %d, want 1", idx)
	}
}

func TestMonochromeThreshold(t *testing.T) {
	p, err := palette.New([]color.RGB{color.Black, color.White})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Monochrome, p)
	if err != nil {
		t.Fatal(err)
	}
	if idx := s.Quantize(color.RGB{0, 0, 0}); idx != 0 {
		t.Errorf("black: got %d, want 0", idx)
	}
	if idx := s.Quantize(color.RGB{0xff, 0xff, 0xff}); idx != 1 {
		t.Errorf("white: got %d, want 1", idx)
	}
}
