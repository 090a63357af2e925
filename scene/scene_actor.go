package scene

import (
	"fmt"

	"hello-ebiten/core"
	"hello-ebiten/data"
	"hello-ebiten/ecs/component"
	"hello-ebiten/ecs/entity"
	"hello-ebiten/ecs/system"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

var (
	BackgroundColor = core.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
	LabelPosition   = core.Vec2{X: 10, Y: 10}
)

const (
	CircleRadius    = 100.0
	CircleY         = 380.0
	CircleTolerance = 2.0
	LabelText       = "hoge"
)

// ActorScene は背景、横に流れる円、プレイヤーのスプライト、固定のラベルを描画するプログラムです。
type ActorScene struct {
	world  donburi.World
	assets *data.AssetTable
	scroll float64
	width  float64
	height float64
}

// NewActorScene はアセットを読み込み、プレイヤーを1体配置したシーンを生成します。
// アセットの読み込みに失敗した場合はシーンを返さずにエラーを返します。
func NewActorScene(src data.ImageSource, win core.WindowInfo) (*ActorScene, error) {
	assets, err := data.NewAssetTable(src)
	if err != nil {
		return nil, fmt.Errorf("アクターシーンの初期化に失敗しました: %w", err)
	}

	world := donburi.NewWorld()
	entity.CreatePlayer(world)

	log.Info("アクターシーンを初期化しました", "width", win.Width, "height", win.Height)
	return &ActorScene{
		world:  world,
		assets: assets,
		width:  win.Width,
		height: win.Height,
	}, nil
}

func (s *ActorScene) Update(_ core.Clock) error {
	s.scroll = system.NextScroll(s.scroll)
	return nil
}

func (s *ActorScene) Draw(canvas core.Canvas) error {
	s.width, s.height = canvas.Size()

	if err := canvas.Clear(BackgroundColor); err != nil {
		return err
	}
	if err := canvas.DrawCircle(core.Vec2{X: s.scroll, Y: CircleY}, CircleRadius, core.ColorWhite, CircleTolerance); err != nil {
		return err
	}
	if err := system.DrawActors(s.world, s.assets, canvas, s.width, s.height); err != nil {
		return err
	}
	if err := canvas.DrawText(LabelText, LabelPosition, core.ColorWhite); err != nil {
		return err
	}
	return canvas.Present()
}

// Scroll は現在のスクロール値を返します。
func (s *ActorScene) Scroll() float64 {
	return s.scroll
}

// Player はプレイヤーの現在の状態を返します。
func (s *ActorScene) Player() component.Actor {
	entry := entity.FindPlayer(s.world)
	if entry == nil {
		return component.Actor{}
	}
	return *component.ActorComponent.Get(entry)
}

var _ core.Program = (*ActorScene)(nil)
