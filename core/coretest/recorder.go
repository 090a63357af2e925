// Package coretest は core のインターフェースのテスト用実装を提供します。
package coretest

import (
	"image"
	"image/color"
	"time"

	"hello-ebiten/core"
)

// CommandKind は記録された描画コマンドの種類です。
type CommandKind string

const (
	CommandClear   CommandKind = "clear"
	CommandImage   CommandKind = "image"
	CommandCircle  CommandKind = "circle"
	CommandText    CommandKind = "text"
	CommandPresent CommandKind = "present"
)

// Command は Recorder が記録した1回の描画呼び出しです。
type Command struct {
	Kind      CommandKind
	Image     core.Image
	Pos       core.Vec2
	Anchor    core.Anchor
	Radius    float64
	Tolerance float64
	Color     color.Color
	Text      string
}

// Recorder は描画呼び出しを順番に記録する core.Canvas です。
type Recorder struct {
	Width    float64
	Height   float64
	Commands []Command
	// Fail に登録された種類の呼び出しは、記録されずにそのエラーを返します。
	Fail map[CommandKind]error
}

// NewRecorder は指定サイズの Recorder を返します。
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) record(cmd Command) error {
	if err, ok := r.Fail[cmd.Kind]; ok {
		return err
	}
	r.Commands = append(r.Commands, cmd)
	return nil
}

func (r *Recorder) Clear(c color.Color) error {
	return r.record(Command{Kind: CommandClear, Color: c})
}

func (r *Recorder) DrawImage(img core.Image, pos core.Vec2, anchor core.Anchor) error {
	return r.record(Command{Kind: CommandImage, Image: img, Pos: pos, Anchor: anchor})
}

func (r *Recorder) DrawCircle(center core.Vec2, radius float64, c color.Color, tolerance float64) error {
	return r.record(Command{Kind: CommandCircle, Pos: center, Radius: radius, Color: c, Tolerance: tolerance})
}

func (r *Recorder) DrawText(s string, pos core.Vec2, c color.Color) error {
	return r.record(Command{Kind: CommandText, Text: s, Pos: pos, Color: c})
}

func (r *Recorder) Present() error {
	return r.record(Command{Kind: CommandPresent})
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Kinds は記録されたコマンドの種類を順番に返します。
func (r *Recorder) Kinds() []CommandKind {
	kinds := make([]CommandKind, 0, len(r.Commands))
	for _, c := range r.Commands {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

// Count は指定した種類のコマンドの数を返します。
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Image は GPU を使わないテスト用の画像です。
type Image struct {
	Name string
	W, H int
}

func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// Clock は固定の経過時間を返す core.Clock です。
type Clock struct {
	D time.Duration
}

func (c Clock) Delta() time.Duration {
	return c.D
}

var (
	_ core.Canvas = (*Recorder)(nil)
	_ core.Image  = (*Image)(nil)
	_ core.Clock  = Clock{}
)
