package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "empty document", yaml: ""},
		{name: "valid", yaml: "walkSpeed: 120\nrunSpeed: 240\nmovementSmoothing: 0.05\nverticalDrive: true\n"},
		{name: "smoothing above one", yaml: "movementSmoothing: 1.5\n", wantErr: "movementSmoothing"},
		{name: "zero mass", yaml: "mass: 0\n", wantErr: "mass"},
		{name: "negative speed", yaml: "walkSpeed: -1\n", wantErr: "walkSpeed"},
		{name: "empty layer", yaml: "groundLayer: \"\"\n", wantErr: "groundLayer"},
		{name: "several problems", yaml: "mass: -1\ngroundCheckRadius: 0\n", wantErr: "groundCheckRadius"},
		{name: "not yaml", yaml: "walkSpeed: [1, 2\n", wantErr: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTuningApplyOnlyPresentKeys(t *testing.T) {
	prevController, prevPhysics := Controller, Physics
	t.Cleanup(func() {
		Controller = prevController
		Physics = prevPhysics
	})

	tuning, err := ParseTuning([]byte("runSpeed: 500\nfriction: 0.2\nverticalDrive: true\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	tuning.Apply()

	if Controller.RunSpeed != 500 || Physics.Friction != 0.2 || !Controller.VerticalDrive {
		t.Errorf("present keys not applied: run=%v friction=%v vertical=%v",
			Controller.RunSpeed, Physics.Friction, Controller.VerticalDrive)
	}
	if Controller.WalkSpeed != prevController.WalkSpeed || Physics.Gravity != prevPhysics.Gravity {
		t.Error("absent keys must keep their current value")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatchTuningReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("walkSpeed: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("walkSpeed: 175\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A truncating write can surface as more than one event; wait for the final content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case tuning := <-w.Updates():
			if tuning.WalkSpeed != nil && *tuning.WalkSpeed == 175 {
				return
			}
		case <-timeout:
			t.Fatal("no reload with walkSpeed 175 within 5s")
		}
	}
}

func TestPlayerStateString(t *testing.T) {
	if Fall.String() != "fall" {
		t.Errorf("Fall.String() = %q", Fall.String())
	}
	if got := PlayerState(99).String(); got != "state(99)" {
		t.Errorf("unknown state String() = %q", got)
	}
}
