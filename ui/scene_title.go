package ui

import (
	"hello-ebiten/data"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleScene はどちらのプログラムを動かすかを選ぶ画面です
type TitleScene struct {
	resources *data.SharedResources
	manager   *SceneManager
	ui        *ebitenui.UI
	quit      bool
}

// NewTitleScene は新しいタイトルシーンを作成します
func NewTitleScene(res *data.SharedResources, manager *SceneManager) *TitleScene {
	t := &TitleScene{
		resources: res,
		manager:   manager,
	}
	uiCfg := res.Config.UI

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(uiCfg.ButtonSpacing),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(uiCfg.Padding)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	textColor := data.Color(uiCfg.Colors.Text)
	titleText := widget.NewText(
		widget.TextOpts.Text(res.Config.Window.Title, res.Font, textColor),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	panel.AddChild(titleText)

	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(data.Color(uiCfg.Colors.Button)),
		Hover:   image.NewNineSliceColor(data.Color(uiCfg.Colors.ButtonHover)),
		Pressed: image.NewNineSliceColor(data.Color(uiCfg.Colors.ButtonPressed)),
	}
	buttonTextColor := &widget.ButtonTextColor{Idle: textColor}

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, res.Font, buttonTextColor),
			widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(10)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}
	panel.AddChild(newButton("Clock Echo", manager.GoToClockEcho))
	panel.AddChild(newButton("Actor Scene", manager.GoToActorScene))
	panel.AddChild(newButton("Quit", func() { t.quit = true }))

	hint := widget.NewText(
		widget.TextOpts.Text("Esc でタイトルに戻る", res.Font, data.Color(uiCfg.Colors.ButtonHover)),
	)
	panel.AddChild(hint)

	t.ui = &ebitenui.UI{Container: rootContainer}
	return t
}

// Update はUIの状態を更新します。Quit が押された場合は ebiten.Termination を返します。
func (t *TitleScene) Update() error {
	if t.quit {
		return ebiten.Termination
	}
	t.ui.Update()
	return nil
}

// Draw はUIを描画します
func (t *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(data.Color(t.resources.Config.UI.Colors.Background))
	t.ui.Draw(screen)
}

// Layout はEbitenのレイアウト計算を行います。bamennのシーンとして必須です。
func (t *TitleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return t.resources.ScreenSize()
}
