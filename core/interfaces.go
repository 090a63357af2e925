package core

import (
	"image"
	"image/color"
	"time"
)

// Image は描画可能な画像リソースです。
// *ebiten.Image はこのインターフェースを満たします。
type Image interface {
	Bounds() image.Rectangle
}

// Canvas はプログラムが1フレームの描画で使う描画先です。
// いずれかの操作が失敗した場合、そのフレームの描画は中断されます。
type Canvas interface {
	Clear(c color.Color) error
	DrawImage(img Image, pos Vec2, anchor Anchor) error
	DrawCircle(center Vec2, radius float64, c color.Color, tolerance float64) error
	DrawText(s string, pos Vec2, c color.Color) error
	Present() error
	// Size は現在の描画領域のサイズを返します。
	Size() (width, height float64)
}

// Clock は前回の Update からの経過時間を提供します。
type Clock interface {
	Delta() time.Duration
}

// Program はホストのゲームループから毎フレーム Update → Draw の順で呼び出されます。
// 同時に呼び出されることはありません。
type Program interface {
	Update(clock Clock) error
	Draw(canvas Canvas) error
}
