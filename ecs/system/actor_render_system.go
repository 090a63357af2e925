package system

import (
	"fmt"

	"hello-ebiten/core"
	"hello-ebiten/ecs/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// ActorImages はアクターの種類から画像を引くテーブルです。
type ActorImages interface {
	Image(t component.ActorType) core.Image
}

var actorQuery = query.NewQuery(filter.Contains(component.ActorComponent))

// DrawActors はワールド内の全てのアクターを、ワールド座標から変換した位置に
// 画像の中心を合わせて描画します。
func DrawActors(world donburi.World, images ActorImages, canvas core.Canvas, width, height float64) error {
	var drawErr error
	actorQuery.Each(world, func(entry *donburi.Entry) {
		if drawErr != nil {
			return
		}
		actor := component.ActorComponent.Get(entry)
		pos := core.WorldToScreen(width, height, actor.Position)
		if err := canvas.DrawImage(images.Image(actor.Type), pos, core.AnchorCenter); err != nil {
			drawErr = fmt.Errorf("アクター %v の描画に失敗しました: %w", actor.Type, err)
		}
	})
	return drawErr
}
