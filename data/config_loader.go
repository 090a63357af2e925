package data

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

const (
	configDirName  = ".hello-ebiten"
	configFileName = "config.yaml"
)

// DefaultConfig は組み込みの既定設定を返します。
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		// 組み込みのYAMLが壊れているのはビルドの問題です
		panic(fmt.Sprintf("default_config.yaml のパースに失敗しました: %v", err))
	}
	return cfg
}

// LoadConfig は設定を読み込みます。
// 探索順: customPath -> ~/.hello-ebiten/config.yaml -> ./configs/config.yaml -> 組み込みの既定値
// ファイルに書かれていない項目は既定値のままになります。
func LoadConfig(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("設定ファイル %s の読み込みに失敗しました: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("設定ファイル %s のパースに失敗しました: %w", customPath, err)
		}
		log.Info("設定ファイルを読み込みました", "path", customPath)
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", configFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Warn("設定ファイルを無視します", "path", path, "err", err)
			cfg = DefaultConfig()
			continue
		}
		log.Info("設定ファイルを読み込みました", "path", path)
		return cfg, nil
	}

	return cfg, nil
}

// userConfigPath はユーザー設定ファイルのパスを返します。ホームが取得できない場合は空文字です。
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}
