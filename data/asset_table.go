package data

import (
	"fmt"

	"hello-ebiten/core"
	"hello-ebiten/ecs/component"

	resource "github.com/quasilyte/ebitengine-resource"
)

// actorImageIDs はアクターの種類と画像IDの対応表です。
// component.ActorType を追加した場合はここにも追加する必要があり、
// 漏れていると NewAssetTable がエラーを返します。
var actorImageIDs = map[component.ActorType]resource.ImageID{
	component.ActorPlayer: ImagePlayer,
}

// AssetTable はアクターの種類ごとの画像を保持します。
// 生成時に全ての種類の画像が揃っていることが保証されるため、参照は失敗しません。
type AssetTable struct {
	images [component.ActorTypeCount]core.Image
}

// NewAssetTable は全てのアクター種別の画像を読み込みます。
// 1つでも失敗した場合はテーブルを返さずにエラーを返します。
func NewAssetTable(src ImageSource) (*AssetTable, error) {
	t := &AssetTable{}
	for _, actorType := range component.ActorTypes() {
		id, ok := actorImageIDs[actorType]
		if !ok {
			return nil, fmt.Errorf("アクター %v に対応する画像が登録されていません", actorType)
		}
		img, err := src.LoadImage(id)
		if err != nil {
			return nil, fmt.Errorf("アクター %v の画像の読み込みに失敗しました: %w", actorType, err)
		}
		if img == nil {
			return nil, fmt.Errorf("アクター %v の画像が nil です", actorType)
		}
		t.images[actorType] = img
	}
	return t, nil
}

// Image はアクターの種類に対応する画像を返します。
// 定義されていない種類の場合は nil を返し、描画側でエラーになります。
func (t *AssetTable) Image(actorType component.ActorType) core.Image {
	if actorType < 0 || actorType >= component.ActorTypeCount {
		return nil
	}
	return t.images[actorType]
}
