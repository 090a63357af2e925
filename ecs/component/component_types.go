package component

import (
	"github.com/yohamta/donburi"
)

// --- Componentの型定義 ---
var (
	ActorComponent = donburi.NewComponentType[Actor]()

	// PlayerTag はプレイヤーのアクターに付与されます。
	PlayerTag = donburi.NewTag()
)
