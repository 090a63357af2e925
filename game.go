package main

import (
	"errors"
	"os"

	"hello-ebiten/data"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// runGame はウィンドウを設定してゲームループを開始します。
// ebiten.Termination による終了はエラーとして扱いません。
func runGame(cfg data.Config, game ebiten.Game) error {
	if wd, err := os.Getwd(); err == nil {
		log.Debug("カレントワーキングディレクトリ", "dir", wd)
	}

	w, h := cfg.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Info("ゲームを開始します", "title", cfg.Window.Title, "width", w, "height", h, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("ゲームを終了しました")
	return nil
}
