package data

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("default size = %vx%v", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.ResourceDir != "resources" || cfg.Assets.Player != "player.png" {
		t.Errorf("unexpected asset defaults: %+v", cfg.Assets)
	}
}

func TestLoadConfigCustomPathOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "window:\n  title: custom\n  width: 800\n  height: 600\nresource_dir: assets\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "custom" || cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window not overridden: %+v", cfg.Window)
	}
	if cfg.ResourceDir != "assets" {
		t.Errorf("ResourceDir = %q", cfg.ResourceDir)
	}
	if cfg.TPS != 60 || cfg.Assets.Player != "player.png" {
		t.Errorf("unset fields should keep defaults: tps=%d player=%q", cfg.TPS, cfg.Assets.Player)
	}
}

func TestLoadConfigMissingCustomPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("tps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 30 {
		t.Errorf("TPS = %d, expected 30", cfg.TPS)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "empty title", mutate: func(c *Config) { c.Window.Title = "" }, want: "window.title"},
		{name: "zero width", mutate: func(c *Config) { c.Window.Width = 0 }, want: "window"},
		{name: "negative height", mutate: func(c *Config) { c.Window.Height = -1 }, want: "window"},
		{name: "zero tps", mutate: func(c *Config) { c.TPS = 0 }, want: "tps"},
		{name: "empty resource dir", mutate: func(c *Config) { c.ResourceDir = "" }, want: "resource_dir"},
		{name: "empty player", mutate: func(c *Config) { c.Assets.Player = "" }, want: "assets.player"},
		{name: "player outside resource dir", mutate: func(c *Config) { c.Assets.Player = "../escape.png" }, want: "assets.player"},
		{name: "nested parent reference", mutate: func(c *Config) { c.Assets.Player = "images/../../x.png" }, want: "assets.player"},
		{name: "font outside resource dir", mutate: func(c *Config) { c.Assets.Font = "../fonts/a.ttf" }, want: "assets.font"},
		{name: "font without size", mutate: func(c *Config) { c.Assets.Font = "a.ttf"; c.Assets.FontSize = 0 }, want: "font_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.Color
	}{
		{in: "1a334d", expected: color.RGBA{R: 0x1a, G: 0x33, B: 0x4d, A: 255}},
		{in: "ffffff", expected: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "fff", expected: color.White},
		{in: "zzzzzz", expected: color.White},
	}
	for _, tc := range tests {
		if got := parseHexColor(tc.in); got != tc.expected {
			t.Errorf("parseHexColor(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestLoadConfigLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	if err := os.MkdirAll(filepath.Join(wd, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wd, "configs", configFileName), []byte("tps: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(wd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 45 {
		t.Errorf("TPS = %d, expected 45", cfg.TPS)
	}
}

func writeUserConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigMalformedUserConfigResetsToDefaults(t *testing.T) {
	// tps は読み込まれた後に window の型エラーで失敗する
	writeUserConfig(t, "tps: 30\nwindow: not-a-mapping\n")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, expected default 60 after malformed user config", cfg.TPS)
	}
	if cfg.Window != DefaultConfig().Window {
		t.Errorf("Window = %+v, expected defaults", cfg.Window)
	}
}

func TestLoadConfigMalformedUserConfigFallsBackToLocal(t *testing.T) {
	writeUserConfig(t, "tps: 30\nwindow: not-a-mapping\n")
	wd := t.TempDir()
	if err := os.MkdirAll(filepath.Join(wd, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wd, "configs", configFileName), []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(wd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("expected local config to be applied")
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, expected default 60", cfg.TPS)
	}
}
