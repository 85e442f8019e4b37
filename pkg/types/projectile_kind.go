package types

// ProjectileKind 定义玩家子弹的类型
// 类型决定子弹的速度、尺寸和绘制方式
type ProjectileKind int

const (
	// ProjectileNormal 普通子弹
	ProjectileNormal ProjectileKind = iota
	// ProjectileEnhanced 强化子弹
	ProjectileEnhanced
	// ProjectileSpread 扫射子弹
	ProjectileSpread
	// ProjectileLaser 激光
	ProjectileLaser
	// ProjectileSpiral 螺旋弹
	ProjectileSpiral
	// ProjectileUltimate 终极弹
	ProjectileUltimate
)

// String 返回子弹类型的字符串表示
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileNormal:
		return "normal"
	case ProjectileEnhanced:
		return "enhanced"
	case ProjectileSpread:
		return "spread"
	case ProjectileLaser:
		return "laser"
	case ProjectileSpiral:
		return "spiral"
	case ProjectileUltimate:
		return "ultimate"
	default:
		return "unknown"
	}
}
