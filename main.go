// hello-ebiten は ebiten で動く2つの小さなサンプルプログラムです。
//
// Usage:
//
//	hello-ebiten clock   - 毎フレームの経過時間を標準出力に表示します
//	hello-ebiten scene   - 背景・円・プレイヤー・ラベルを描画します
//	hello-ebiten menu    - タイトル画面からプログラムを選びます
package main

import (
	"fmt"
	"os"

	"hello-ebiten/data"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagTitle     string
	flagWidth     float64
	flagHeight    float64
	flagResources string
	flagTPS       int
	flagDebug     bool
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("実行に失敗しました", "err", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hello-ebiten",
	Short: "ebiten のサンプルプログラム集",
	Long: `ebiten のサンプルプログラム集です。

  clock  - フレーム間の経過時間を表示します
  scene  - スクロールする円とプレイヤーを描画します
  menu   - タイトル画面から選んで実行します

Examples:
  hello-ebiten clock
  hello-ebiten scene --resources ./resources --width 800 --height 600
  hello-ebiten menu --debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "設定ファイルのパス (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "", "ウィンドウのタイトル")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 0, "ウィンドウの幅 (px)")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 0, "ウィンドウの高さ (px)")
	rootCmd.PersistentFlags().StringVar(&flagResources, "resources", "", "アセットを探すディレクトリ")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "1秒あたりの Update 回数")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "TPS/FPS を画面に表示します")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "ログレベル (debug, info, warn, error)")

	rootCmd.AddCommand(clockCmd)
	rootCmd.AddCommand(sceneCmd)
	rootCmd.AddCommand(menuCmd)
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("ログレベルが不正です: %w", err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hello-ebiten",
		Level:           lvl,
	}))
	return nil
}

// loadConfig は設定ファイルを読み込み、指定されたフラグで上書きして検証します。
func loadConfig(cmd *cobra.Command) (data.Config, error) {
	cfg, err := data.LoadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("設定が不正です: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *data.Config) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Window.Title = flagTitle
	}
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("resources") {
		cfg.ResourceDir = flagResources
	}
	if flags.Changed("tps") {
		cfg.TPS = flagTPS
	}
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}
}
