package entity

import (
	"hello-ebiten/ecs/component"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// FindPlayer はプレイヤーのエントリを返します。見つからない場合は nil を返します。
func FindPlayer(world donburi.World) *donburi.Entry {
	entry, ok := query.NewQuery(filter.Contains(component.PlayerTag)).First(world)
	if !ok {
		return nil
	}
	return entry
}
