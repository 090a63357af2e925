package core

import (
	"image/color"
	"math"
)

// --- Geometry ---

// Vec2 は2次元のベクトル（座標）です。
type Vec2 struct {
	X float64
	Y float64
}

// Anchor は画像内の基準点を画像サイズに対する比率で表します。
type Anchor = Vec2

// AnchorCenter は画像の中心を基準点にします。
var AnchorCenter = Anchor{X: 0.5, Y: 0.5}

// WorldToScreen はワールド座標（原点が画面中央、Y軸上向き）を
// スクリーン座標（原点が左上、Y軸下向き）に変換します。
func WorldToScreen(width, height float64, p Vec2) Vec2 {
	return Vec2{
		X: p.X + width/2,
		Y: height - (p.Y + height/2),
	}
}

// ScreenToWorld は WorldToScreen の逆変換です。
func ScreenToWorld(width, height float64, p Vec2) Vec2 {
	return Vec2{
		X: p.X - width/2,
		Y: height/2 - p.Y,
	}
}

const (
	MinCircleSegments = 8
	MaxCircleSegments = 1024
)

// CircleSegments は半径 radius の円を、弦と円弧のずれが tolerance 以内に収まるように
// 多角形で近似するときの頂点数を返します。
func CircleSegments(radius, tolerance float64) int {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return MinCircleSegments
	}
	if !(tolerance > 0) {
		return MaxCircleSegments
	}
	if tolerance >= radius {
		return MinCircleSegments
	}
	n := math.Ceil(math.Pi / math.Acos(1-tolerance/radius))
	switch {
	case n < MinCircleSegments:
		return MinCircleSegments
	case n > MaxCircleSegments:
		return MaxCircleSegments
	}
	return int(n)
}

// --- Colors ---

// Color は 0.0〜1.0 に正規化されたRGBA（ストレートアルファ）の色です。
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack = Color{A: 1}
)

// RGBA は color.Color を実装します。戻り値はアルファ乗算済みです。
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel(c.A)
	r = channel(c.R*clamp01(c.A))
	g = channel(c.G*clamp01(c.A))
	b = channel(c.B*clamp01(c.A))
	return
}

func channel(v float32) uint32 {
	return uint32(clamp01(v)*0xffff + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ color.Color = Color{}

// --- Window ---

// WindowInfo はプログラムの初期化時に渡されるウィンドウ情報です。
type WindowInfo struct {
	Title  string
	Width  float64
	Height float64
}
