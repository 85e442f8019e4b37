package utils

import "math"

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³，超出 [0, 1] 的输入会被截断
func EaseOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
