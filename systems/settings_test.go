package systems

import (
	"testing"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
)

func TestNextScaleIndexWraps(t *testing.T) {
	n := len(cfg.Window.Scales)
	if got := NextScaleIndex(n - 1); got != 0 {
		t.Errorf("NextScaleIndex(%d) = %d, want 0", n-1, got)
	}
	if got := NextScaleIndex(0); got != 1%n {
		t.Errorf("NextScaleIndex(0) = %d, want %d", got, 1%n)
	}
}

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    SavedSettings
		wantErr bool
	}{
		{
			name: "full",
			data: `{"showDebug":true,"scaleIndex":2,"lastLevel":"towers"}`,
			want: SavedSettings{ShowDebug: true, ScaleIndex: 2, LastLevel: "towers"},
		},
		{
			name: "missing keys keep defaults",
			data: `{"showDebug":true}`,
			want: SavedSettings{ShowDebug: true, ScaleIndex: cfg.Window.DefaultScaleIndex},
		},
		{
			name: "out of range scale",
			data: `{"scaleIndex":99}`,
			want: SavedSettings{ScaleIndex: cfg.Window.DefaultScaleIndex},
		},
		{
			name:    "garbage",
			data:    `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSettings([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSettings: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoadSettingsWithoutPersistence(t *testing.T) {
	if gdataInitialized {
		t.Skip("persistence initialised by another test")
	}
	got := LoadSettings()
	if *got != *DefaultSettings() {
		t.Errorf("got %+v, want defaults", *got)
	}
}

func TestSaveCurrentSettingsWithoutPersistence(t *testing.T) {
	if gdataInitialized {
		t.Skip("persistence initialised by another test")
	}
	settings := &components.SettingsData{ShowDebug: true, ScaleIndex: 2}
	if err := SaveCurrentSettings(settings, "meadow"); err != nil {
		t.Errorf("SaveCurrentSettings() error = %v, want nil", err)
	}
}
