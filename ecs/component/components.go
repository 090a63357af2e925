package component

// ECSのCに相当するコンポーネントのデータ構造を定義します。

import (
	"fmt"

	"hello-ebiten/core"
)

// ActorType はアクターの種類です。種類ごとに使う画像が決まります。
type ActorType int

const (
	ActorPlayer ActorType = iota

	// ActorTypeCount は種類の数です。新しい種類はこの行の上に追加します。
	ActorTypeCount
)

// ActorTypes は定義済みの全てのアクター種別を返します。
func ActorTypes() []ActorType {
	types := make([]ActorType, 0, ActorTypeCount)
	for t := ActorType(0); t < ActorTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t ActorType) String() string {
	switch t {
	case ActorPlayer:
		return "Player"
	}
	return fmt.Sprintf("ActorType(%d)", int(t))
}

// Facing はアクターの向きです。
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// Actor は描画されるゲーム内のエンティティです。
type Actor struct {
	Type         ActorType
	Position     core.Vec2 // ワールド座標
	Facing       Facing
	BoundingSize float64 // 当たり判定用
	Life         float64
}
