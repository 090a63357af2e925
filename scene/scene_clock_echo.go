package scene

import (
	"fmt"
	"io"
	"time"

	"hello-ebiten/core"
)

// ClockEcho は毎フレームの経過時間を記録し、描画のたびにそれを出力するだけのプログラムです。
type ClockEcho struct {
	dt  time.Duration
	out io.Writer
}

// NewClockEcho は out に出力する ClockEcho を返します。
func NewClockEcho(out io.Writer) *ClockEcho {
	return &ClockEcho{out: out}
}

func (c *ClockEcho) Update(clock core.Clock) error {
	c.dt = clock.Delta()
	return nil
}

// Draw は画面には何も描かず、経過時間をナノ秒で出力します。
func (c *ClockEcho) Draw(_ core.Canvas) error {
	fmt.Fprintf(c.out, "Hello ebiten! dt = %dns\n", c.dt.Nanoseconds())
	return nil
}

// Delta は最後に記録した経過時間を返します。
func (c *ClockEcho) Delta() time.Duration {
	return c.dt
}

var _ core.Program = (*ClockEcho)(nil)
