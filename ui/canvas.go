package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"hello-ebiten/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solidSource は DrawTriangles のソースに使う白一色の画像を返します。
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas は ebiten のスクリーン画像に描画する core.Canvas の実装です。
// 1フレームごとに生成します。
type Canvas struct {
	screen    *ebiten.Image
	face      text.Face
	presented bool
}

// NewCanvas は screen に描画する Canvas を返します。face はテキスト描画に使います。
func NewCanvas(screen *ebiten.Image, face text.Face) *Canvas {
	return &Canvas{screen: screen, face: face}
}

func (c *Canvas) Clear(clr color.Color) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	c.screen.Fill(clr)
	return nil
}

func (c *Canvas) DrawImage(img core.Image, pos core.Vec2, anchor core.Anchor) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	src, ok := img.(*ebiten.Image)
	if !ok || src == nil {
		return fmt.Errorf("描画できない画像です: %T", img)
	}
	size := src.Bounds().Size()
	origin := anchoredOrigin(pos, anchor, core.Vec2{X: float64(size.X), Y: float64(size.Y)})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	c.screen.DrawImage(src, op)
	return nil
}

// anchoredOrigin は画像の基準点 anchor が pos に来るときの画像左上の位置を返します。
func anchoredOrigin(pos core.Vec2, anchor core.Anchor, size core.Vec2) core.Vec2 {
	return core.Vec2{
		X: pos.X - anchor.X*size.X,
		Y: pos.Y - anchor.Y*size.Y,
	}
}

// DrawCircle は円を多角形で近似して塗りつぶします。
// 頂点数は core.CircleSegments で tolerance から決まります。
func (c *Canvas) DrawCircle(center core.Vec2, radius float64, clr color.Color, tolerance float64) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if !(radius > 0) {
		return nil
	}

	n := core.CircleSegments(radius, tolerance)
	var path vector.Path
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := float32(center.X + radius*math.Cos(theta))
		y := float32(center.Y + radius*math.Sin(theta))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	c.screen.DrawTriangles(vs, is, solidSource(), op)
	return nil
}

func (c *Canvas) DrawText(s string, pos core.Vec2, clr color.Color) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if c.face == nil {
		return errors.New("フォントが設定されていません")
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, c.face, op)
	return nil
}

// Present はフレームの描画完了を記録します。実際の画面への反映は ebiten が
// Draw から戻った後に行います。
func (c *Canvas) Present() error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	c.presented = true
	return nil
}

func (c *Canvas) Size() (float64, float64) {
	size := c.screen.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

func (c *Canvas) ensureOpen() error {
	if c.presented {
		return errors.New("このフレームは既に表示されています")
	}
	return nil
}

var _ core.Canvas = (*Canvas)(nil)
