package ui

import (
	"io"

	"hello-ebiten/core"
	"hello-ebiten/data"
	"hello-ebiten/scene"

	"github.com/charmbracelet/log"
	"github.com/noppikinatta/bamenn"
)

// SceneManagerはbamennのシーケンスと共有リソースを管理します
type SceneManager struct {
	Sequence  *bamenn.Sequence
	resources *data.SharedResources
	out       io.Writer
}

// NewSceneManagerはタイトルシーンから始まるシーンマネージャを作成します。
// out は ClockEcho の出力先です。
func NewSceneManager(res *data.SharedResources, out io.Writer) *SceneManager {
	m := &SceneManager{
		resources: res,
		out:       out,
	}
	m.Sequence = bamenn.NewSequence(NewTitleScene(res, m))
	return m
}

func (m *SceneManager) hostOptions() HostOptions {
	w, h := m.resources.ScreenSize()
	return HostOptions{
		Font:   m.resources.Font,
		Width:  w,
		Height: h,
		Debug:  m.resources.Config.Debug,
		OnBack: m.GoToTitleScene,
	}
}

func (m *SceneManager) windowInfo() core.WindowInfo {
	return core.WindowInfo{
		Title:  m.resources.Config.Window.Title,
		Width:  m.resources.Config.Window.Width,
		Height: m.resources.Config.Window.Height,
	}
}

// switchTo は次のシーンに切り替えます。
func (m *SceneManager) switchTo(next Scene) {
	m.Sequence.Switch(next)
}

// GoTo... メソッド群は、各シーンから呼び出され、指定されたシーンに遷移させます

func (m *SceneManager) GoToTitleScene() {
	log.Info("シーンを切り替えます", "scene", "title")
	m.switchTo(NewTitleScene(m.resources, m))
}

func (m *SceneManager) GoToClockEcho() {
	log.Info("シーンを切り替えます", "scene", "clock")
	m.switchTo(NewHost(scene.NewClockEcho(m.out), m.hostOptions()))
}

func (m *SceneManager) GoToActorScene() {
	program, err := scene.NewActorScene(m.resources.Images, m.windowInfo())
	if err != nil {
		log.Error("アクターシーンへの切り替えに失敗しました", "err", err)
		return
	}
	log.Info("シーンを切り替えます", "scene", "actor")
	m.switchTo(NewHost(program, m.hostOptions()))
}
