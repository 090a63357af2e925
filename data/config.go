package data

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Config はアプリケーション全体の設定を保持します。
// YAMLファイルから読み込まれ、コマンドラインフラグで上書きされます。
type Config struct {
	Window      WindowConfig `yaml:"window"`
	ResourceDir string       `yaml:"resource_dir"`
	TPS         int          `yaml:"tps"`
	Debug       bool         `yaml:"debug"`
	Assets      AssetConfig  `yaml:"assets"`
	UI          UIConfig     `yaml:"ui"`
}

// WindowConfig はウィンドウの設定です。
type WindowConfig struct {
	Title     string  `yaml:"title"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Resizable bool    `yaml:"resizable"`
}

// AssetConfig は resource_dir からの相対パスでアセットを指定します。
type AssetConfig struct {
	Player   string `yaml:"player"`
	Font     string `yaml:"font"` // 空なら組み込みフォントを使います
	FontSize int    `yaml:"font_size"`
}

// UIConfig はランチャー画面の見た目の設定です。色は16進数文字列 (RRGGBB) で指定します。
type UIConfig struct {
	Colors struct {
		Background    string `yaml:"background"`
		Text          string `yaml:"text"`
		Button        string `yaml:"button"`
		ButtonHover   string `yaml:"button_hover"`
		ButtonPressed string `yaml:"button_pressed"`
	} `yaml:"colors"`
	ButtonSpacing int `yaml:"button_spacing"`
	Padding       int `yaml:"padding"`
}

// Validate は設定値の妥当性を検証します。
func (c Config) Validate() error {
	var errs []error
	if c.Window.Title == "" {
		errs = append(errs, errors.New("window.title が空です"))
	}
	if !(c.Window.Width > 0) || !(c.Window.Height > 0) {
		errs = append(errs, fmt.Errorf("window のサイズが不正です: %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps が不正です: %d", c.TPS))
	}
	if c.ResourceDir == "" {
		errs = append(errs, errors.New("resource_dir が空です"))
	}
	if c.Assets.Player == "" {
		errs = append(errs, errors.New("assets.player が空です"))
	} else if escapesResourceDir(c.Assets.Player) {
		errs = append(errs, fmt.Errorf("assets.player に .. は使えません: %q", c.Assets.Player))
	}
	if escapesResourceDir(c.Assets.Font) {
		errs = append(errs, fmt.Errorf("assets.font に .. は使えません: %q", c.Assets.Font))
	}
	if c.Assets.Font != "" && c.Assets.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("assets.font_size が不正です: %d", c.Assets.FontSize))
	}
	return errors.Join(errs...)
}

// escapesResourceDir はパスに親ディレクトリへの参照 (..) が含まれているかを返します。
func escapesResourceDir(p string) bool {
	for _, elem := range strings.Split(filepath.ToSlash(p), "/") {
		if elem == ".." {
			return true
		}
	}
	return false
}

// ScreenSize は整数に丸めたウィンドウサイズを返します。
func (c Config) ScreenSize() (int, int) {
	return int(c.Window.Width), int(c.Window.Height)
}

// Color は16進数文字列を color.Color に変換します。
// 不正な値の場合は警告を出して白を返します。
func Color(s string) color.Color {
	return parseHexColor(s)
}

func parseHexColor(s string) color.Color {
	var r, g, b uint8
	// 期待する長さ(6)でなければデフォルト色を返す
	if len(s) != 6 {
		log.Warn("無効な16進数カラーコードです。デフォルト色を使用します。", "value", s)
		return color.White
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		log.Warn("16進数カラーコードのパースに失敗しました", "value", s, "err", err)
		return color.White
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
