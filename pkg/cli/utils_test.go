package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/semidash/curvex/engine"
)

func TestLoadGraphConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	want := engine.GraphConfig{
		XMin: 0, XMax: 10, YMin: 0, YMax: 1,
		XScale: 1, YScale: 1,
		XScaleType: engine.ScaleLinear, YScaleType: engine.ScaleLinear,
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadGraphConfig(path)
	if err != nil {
		t.Fatalf("LoadGraphConfig: %v", err)
	}
	if got.XMax != want.XMax || got.YScaleType != want.YScaleType {
		t.Fatalf("expected round-tripped config to match, got %+v", got)
	}
}

func TestLoadGraphConfigMissingFile(t *testing.T) {
	if _, err := LoadGraphConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestSaveMaskPNGWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.png")
	m := engine.NewMask(4, 4)
	m.Set(1, 1)
	if err := SaveMaskPNG(path, m); err != nil {
		t.Fatalf("SaveMaskPNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected a non-empty PNG file on disk")
	}
}
