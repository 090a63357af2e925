package entity

import (
	"hello-ebiten/core"
	"hello-ebiten/ecs/component"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

const (
	DefaultPlayerBoundingSize = 32.0
	DefaultPlayerLife         = 100.0
)

// CreateActor はアクターのエンティティを生成します。
func CreateActor(world donburi.World, actor component.Actor, tags ...donburi.IComponentType) *donburi.Entry {
	components := append([]donburi.IComponentType{component.ActorComponent}, tags...)
	entry := world.Entry(world.Create(components...))
	component.ActorComponent.SetValue(entry, actor)
	return entry
}

// CreatePlayer はワールドの原点に右向きのプレイヤーを生成します。
func CreatePlayer(world donburi.World) *donburi.Entry {
	entry := CreateActor(world, component.Actor{
		Type:         component.ActorPlayer,
		Position:     core.Vec2{},
		Facing:       component.FacingRight,
		BoundingSize: DefaultPlayerBoundingSize,
		Life:         DefaultPlayerLife,
	}, component.PlayerTag)
	log.Debug("プレイヤーを生成しました", "entity", entry.Entity())
	return entry
}
