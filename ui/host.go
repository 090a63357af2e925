package ui

import (
	"context"
	"fmt"

	"hello-ebiten/core"
	"hello-ebiten/ecs/system"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HostOptions は Host の設定です。
type HostOptions struct {
	Font   text.Face
	Width  int
	Height int
	Debug  bool
	// OnBack が設定されている場合、Escape キーで呼び出されます。
	OnBack func()
}

// Host は core.Program を ebiten.Game として動かします。
// Draw で発生したエラーは保持され、次の Update で返されます（ebiten.RunGame が終了します）。
type Host struct {
	program core.Program
	clock   *FrameClock
	cycle   *system.TickCycle
	opts    HostOptions
	err     error
}

// NewHost は program を動かす Host を返します。
func NewHost(program core.Program, opts HostOptions) *Host {
	return &Host{
		program: program,
		clock:   NewFrameClock(),
		cycle:   system.NewTickCycle(),
		opts:    opts,
	}
}

func (h *Host) Update() error {
	if h.err != nil {
		return h.err
	}
	if h.opts.OnBack != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.opts.OnBack()
		return nil
	}
	h.clock.Tick()
	return h.program.Update(h.clock)
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.render(NewCanvas(screen, h.opts.Font))
	if h.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f  FPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()), 0, h.opts.Height-16)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.opts.Width, h.opts.Height
}

// Err は保持しているエラーを返します。
func (h *Host) Err() error {
	return h.err
}

// render は1フレーム分の描画を行い、エラーを保持します。
func (h *Host) render(canvas core.Canvas) {
	if h.err != nil {
		return
	}
	if err := h.frame(canvas); err != nil {
		log.Error("フレームの描画に失敗しました", "frame", h.cycle.Frames(), "err", err)
		h.err = err
	}
}

func (h *Host) frame(canvas core.Canvas) (err error) {
	ctx := context.Background()
	if err := h.cycle.BeginDraw(ctx); err != nil {
		return err
	}
	defer func() {
		if endErr := h.cycle.EndDraw(ctx); err == nil {
			err = endErr
		}
	}()
	if err := h.program.Draw(canvas); err != nil {
		return fmt.Errorf("描画に失敗しました: %w", err)
	}
	return nil
}

var _ ebiten.Game = (*Host)(nil)
