package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dasher.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var embedded DasherConfig
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultDasherConfig()

	if math.Abs(embedded.Player.UpdateTime-def.Player.UpdateTime) > 1e-12 {
		t.Errorf("player update_time = %v, expected %v", embedded.Player.UpdateTime, def.Player.UpdateTime)
	}
	embedded.Player.UpdateTime = def.Player.UpdateTime

	if embedded.World != def.World || embedded.Physics != def.Physics || embedded.Player != def.Player {
		t.Errorf("embedded world/physics/player = %+v %+v %+v, expected %+v %+v %+v",
			embedded.World, embedded.Physics, embedded.Player, def.World, def.Physics, def.Player)
	}
	if embedded.Obstacles != def.Obstacles {
		t.Errorf("embedded obstacles = %+v, expected %+v", embedded.Obstacles, def.Obstacles)
	}
	if len(embedded.Layers) != len(def.Layers) {
		t.Fatalf("embedded has %d layers, expected %d", len(embedded.Layers), len(def.Layers))
	}
	for i := range def.Layers {
		if embedded.Layers[i] != def.Layers[i] {
			t.Errorf("layer %d = %+v, expected %+v", i, embedded.Layers[i], def.Layers[i])
		}
	}
	if embedded.Banner != def.Banner {
		t.Errorf("banner = %+v, expected %+v", embedded.Banner, def.Banner)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDasherConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadDasherCustomPathOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "physics:\n  gravity: 1500\nobstacles:\n  count: 3\n")

	cfg, source, err := LoadDasher(path)
	if err != nil {
		t.Fatalf("LoadDasher() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 1500 {
		t.Errorf("Gravity = %v, expected 1500", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Count != 3 {
		t.Errorf("Count = %d, expected 3", cfg.Obstacles.Count)
	}
	// Keys the file does not mention keep their defaults.
	if cfg.Physics.JumpVelocity != -600 {
		t.Errorf("JumpVelocity = %v, expected -600", cfg.Physics.JumpVelocity)
	}
	if cfg.Obstacles.Padding != 50 {
		t.Errorf("Padding = %v, expected 50", cfg.Obstacles.Padding)
	}
	if len(cfg.Layers) != 3 {
		t.Errorf("len(Layers) = %d, expected 3", len(cfg.Layers))
	}
}

func TestLoadDasherErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantMsg: "failed to read config",
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "physics: [unclosed\n") },
			wantMsg: "failed to parse config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadDasher(tc.path(t))
			if err == nil {
				t.Fatal("LoadDasher() succeeded, expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoadDasherFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadDasher("")
	if err != nil {
		t.Fatalf("LoadDasher() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.World.Width != 720 {
		t.Errorf("World.Width = %v, expected 720", cfg.World.Width)
	}
}

func TestLoadDasherPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".dasher", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dasher.yaml"), []byte("world:\n  width: 800\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadDasher("")
	if err != nil {
		t.Fatalf("LoadDasher() failed: %v", err)
	}
	if !strings.HasPrefix(source, home) {
		t.Errorf("source = %q, expected a path under %q", source, home)
	}
	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %v, expected 800", cfg.World.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *DasherConfig)
		wantErr bool
	}{
		{"defaults", func(c *DasherConfig) {}, false},
		{"two layers", func(c *DasherConfig) { c.Layers = c.Layers[:2] }, true},
		{"empty glyph", func(c *DasherConfig) { c.Layers[0].Glyph = "" }, true},
		{"long glyph", func(c *DasherConfig) { c.Layers[1].Glyph = "##" }, true},
		{"negative banner", func(c *DasherConfig) { c.Banner.Duration = -1 }, true},
		{"bad physics", func(c *DasherConfig) { c.Physics.Gravity = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDasherConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyDasherPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		velocity float64
		count    int
		padding  float64
	}{
		{DifficultyEasy, -160, 6, 50},
		{DifficultyNormal, -200, 10, 50},
		{DifficultyHard, -260, 15, 35},
		{"", -200, 10, 50},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDasherConfig()
			ApplyDasherPreset(&cfg, tc.preset)

			if math.Abs(cfg.Obstacles.Velocity-tc.velocity) > 1e-9 {
				t.Errorf("Velocity = %v, expected %v", cfg.Obstacles.Velocity, tc.velocity)
			}
			if cfg.Obstacles.Count != tc.count {
				t.Errorf("Count = %d, expected %d", cfg.Obstacles.Count, tc.count)
			}
			if math.Abs(cfg.Obstacles.Padding-tc.padding) > 1e-9 {
				t.Errorf("Padding = %v, expected %v", cfg.Obstacles.Padding, tc.padding)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		valid bool
	}{
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"", "", true},
		{"nightmare", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.valid {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.valid)
		}
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultDasherConfig()
	cfg.Obstacles.Count = 4

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	loaded, _, err := LoadDasher(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("LoadDasher() failed: %v", err)
	}
	if loaded.Obstacles.Count != 4 {
		t.Errorf("Count = %d, expected 4", loaded.Obstacles.Count)
	}
}
