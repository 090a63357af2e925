package ui

import (
	"time"

	"hello-ebiten/core"
)

// FrameClock は Update の呼び出し間隔を計測する core.Clock です。
type FrameClock struct {
	now   func() time.Time
	last  time.Time
	delta time.Duration
}

// NewFrameClock は壁時計を使う FrameClock を返します。
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick は現在時刻を記録し、前回の Tick からの経過時間を更新します。
// 最初の Tick では経過時間は0です。
func (c *FrameClock) Tick() {
	t := c.now()
	if !c.last.IsZero() {
		c.delta = t.Sub(c.last)
	}
	c.last = t
}

func (c *FrameClock) Delta() time.Duration {
	return c.delta
}

var _ core.Clock = (*FrameClock)(nil)
