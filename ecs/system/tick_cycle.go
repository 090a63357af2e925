package system

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

const (
	TickStateIdle      = "idle"
	TickStateRendering = "rendering"

	eventBeginDraw = "begin_draw"
	eventEndDraw   = "end_draw"
)

// TickCycle は1フレームの Idle → Rendering → Idle の遷移を管理します。
type TickCycle struct {
	fsm    *fsm.FSM
	frames uint64
}

// NewTickCycle は Idle 状態の TickCycle を生成します。
func NewTickCycle() *TickCycle {
	c := &TickCycle{}
	c.fsm = fsm.NewFSM(
		TickStateIdle,
		fsm.Events{
			{Name: eventBeginDraw, Src: []string{TickStateIdle}, Dst: TickStateRendering},
			{Name: eventEndDraw, Src: []string{TickStateRendering}, Dst: TickStateIdle},
		},
		fsm.Callbacks{
			"leave_" + TickStateRendering: func(_ context.Context, _ *fsm.Event) {
				c.frames++
			},
		},
	)
	return c
}

// BeginDraw は描画の開始を記録します。描画中に呼ばれた場合はエラーを返します。
func (c *TickCycle) BeginDraw(ctx context.Context) error {
	if err := c.fsm.Event(ctx, eventBeginDraw); err != nil {
		return fmt.Errorf("描画を開始できません (state=%s): %w", c.fsm.Current(), err)
	}
	return nil
}

// EndDraw は描画の終了を記録します。
func (c *TickCycle) EndDraw(ctx context.Context) error {
	if err := c.fsm.Event(ctx, eventEndDraw); err != nil {
		return fmt.Errorf("描画を終了できません (state=%s): %w", c.fsm.Current(), err)
	}
	return nil
}

// State は現在の状態を返します。
func (c *TickCycle) State() string {
	return c.fsm.Current()
}

// Frames は完了したフレーム数を返します。
func (c *TickCycle) Frames() uint64 {
	return c.frames
}
