package main

import (
	"os"

	"hello-ebiten/core"
	"hello-ebiten/data"
	"hello-ebiten/scene"
	"hello-ebiten/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "フレーム間の経過時間を標準出力に表示します",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		res, err := newSharedResources(cfg)
		if err != nil {
			return err
		}
		return runGame(cfg, ui.NewHost(scene.NewClockEcho(os.Stdout), hostOptions(res)))
	},
}

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "スクロールする円とプレイヤーを描画します",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		res, err := newSharedResources(cfg)
		if err != nil {
			return err
		}
		program, err := scene.NewActorScene(res.Images, core.WindowInfo{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		})
		if err != nil {
			return err
		}
		return runGame(cfg, ui.NewHost(program, hostOptions(res)))
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "タイトル画面から実行するプログラムを選びます",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		res, err := newSharedResources(cfg)
		if err != nil {
			return err
		}
		manager := ui.NewSceneManager(res, os.Stdout)
		return runGame(cfg, manager.Sequence)
	},
}

// newSharedResources は resource_dir からフォントを読み込み、共有リソースを作成します。
func newSharedResources(cfg data.Config) (*data.SharedResources, error) {
	loader := data.NewResourceLoader(os.DirFS(cfg.ResourceDir), cfg.Assets)
	face, err := loader.LoadFontFace()
	if err != nil {
		return nil, err
	}
	log.Debug("リソースローダーを初期化しました", "dir", cfg.ResourceDir)
	return data.NewSharedResources(cfg, face, loader), nil
}

func hostOptions(res *data.SharedResources) ui.HostOptions {
	w, h := res.ScreenSize()
	return ui.HostOptions{
		Font:   res.Font,
		Width:  w,
		Height: h,
		Debug:  res.Config.Debug,
	}
}
