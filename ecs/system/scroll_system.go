package system

import "math"

// ScrollPeriod はスクロール値が一巡する幅です。
const ScrollPeriod = 800.0

// NextScroll は1ティック分進めたスクロール値を返します。
// 剰余を取ってから1を足すため、値は (0, 801] を巡回します。
func NextScroll(x float64) float64 {
	return math.Mod(x, ScrollPeriod) + 1
}
