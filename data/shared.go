package data

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SharedResources はシーン間で共有されるリソースを保持します。
type SharedResources struct {
	Config Config
	Font   text.Face
	Images ImageSource
}

// NewSharedResources はSharedResourcesを初期化して返します。
func NewSharedResources(config Config, font text.Face, images ImageSource) *SharedResources {
	return &SharedResources{
		Config: config,
		Font:   font,
		Images: images,
	}
}

// ScreenSize は Layout で使う論理画面サイズを返します。
func (r *SharedResources) ScreenSize() (int, int) {
	return r.Config.ScreenSize()
}
