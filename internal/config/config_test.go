package config

import (
	"errors"
	"io"
	"testing"

	"github.com/olivier-w/polytone/internal/tone"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("POLYTONE_MODE", "")
	t.Setenv("POLYTONE_MUTE", "")
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Mode != "morph" || cfg.Scale != tone.Continuous || cfg.Muted || cfg.OutDir != "." {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-mode", "bounce", "-scale", "major", "-mute", "-out", "/tmp/x"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Mode != "bounce" || cfg.Scale != tone.Major || !cfg.Muted || cfg.OutDir != "/tmp/x" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseEnvFallback(t *testing.T) {
	t.Setenv("POLYTONE_MODE", "cascade")
	t.Setenv("POLYTONE_MUTE", "true")
	t.Setenv("POLYTONE_SCALE", "major")
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Mode != "cascade" || !cfg.Muted || cfg.Scale != tone.Major {
		t.Fatalf("expected env settings, got %+v", cfg)
	}

	cfg, _ = Parse([]string{"-mode", "morph"}, io.Discard)
	if cfg.Mode != "morph" {
		t.Fatalf("expected flag to override env, got %q", cfg.Mode)
	}
}

func TestParseRejectsBadScaleAndArgs(t *testing.T) {
	if _, err := Parse([]string{"-scale", "minor"}, io.Discard); err == nil {
		t.Fatal("expected unknown scale error")
	}
	if _, err := Parse([]string{"extra"}, io.Discard); err == nil {
		t.Fatal("expected positional argument error")
	}
	if _, err := Parse([]string{"-h"}, io.Discard); !errors.Is(err, ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}

func TestParseRender(t *testing.T) {
	r, err := ParseRender([]string{"-text", "hello", "-png", "out.png", "-size", "256"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseRender: %v", err)
	}
	if r.Text != "hello" || r.PNG != "out.png" || r.Size != 256 || r.Mode != "morph" {
		t.Fatalf("unexpected render config: %+v", r)
	}
}

func TestParseRenderRequiresOutput(t *testing.T) {
	if _, err := ParseRender([]string{"-text", "x"}, io.Discard); err == nil {
		t.Fatal("expected error without outputs")
	}
	if _, err := ParseRender([]string{"-wav", "a.wav", "-size", "4"}, io.Discard); err == nil {
		t.Fatal("expected error for tiny size")
	}
}
