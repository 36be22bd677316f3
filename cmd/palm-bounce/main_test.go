package main

import (
	"testing"

	"github.com/lixenwraith/palm-bounce/config"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "no flags keep file values",
			args: nil,
			check: func(t *testing.T, cfg config.Config) {
				if !cfg.Audio || cfg.Debug || cfg.Tracking.Source != config.SourceMouse {
					t.Errorf("Expected defaults, got %+v", cfg)
				}
			},
		},
		{
			name: "trace implies trace source",
			args: []string{"-trace", "hands.yaml"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Tracking.Source != config.SourceTrace || cfg.Tracking.Trace != "hands.yaml" {
					t.Errorf("Expected trace source, got %+v", cfg.Tracking)
				}
			},
		},
		{
			name: "explicit source wins",
			args: []string{"-trace", "hands.yaml", "-source", "mouse"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Tracking.Source != config.SourceMouse {
					t.Errorf("Expected mouse source, got %q", cfg.Tracking.Source)
				}
			},
		},
		{
			name: "mute and debug",
			args: []string{"-mute", "-debug", "-loop=false"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.Audio || !cfg.Debug || cfg.Tracking.Loop {
					t.Errorf("Expected muted debug run without loop, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, fs, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags failed: %v", err)
			}
			tt.check(t, applyOverrides(config.Default(), fs, opts))
		})
	}
}

func TestApplyOverridesKeepsFileLoop(t *testing.T) {
	cfg := config.Default()
	cfg.Tracking.Loop = false

	opts, fs, err := parseFlags([]string{"-debug"})
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if got := applyOverrides(cfg, fs, opts); got.Tracking.Loop {
		t.Errorf("Expected unset -loop to keep the file value")
	}
}
