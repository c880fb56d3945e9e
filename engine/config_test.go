package engine

import (
	"testing"

	"github.com/lixenwraith/galactic-wrench/parameter"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero tick", Config{}, true},
		{"negative tick", Config{TickInterval: -parameter.TickInterval}, true},
		{"seeded", Config{TickInterval: parameter.TickInterval, Seed: 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigUsesParameterTick(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickInterval != parameter.TickInterval {
		t.Errorf("TickInterval = %v, want %v", cfg.TickInterval, parameter.TickInterval)
	}
	if cfg.SnapshotBulletDamage {
		t.Error("SnapshotBulletDamage should default to false")
	}
}
