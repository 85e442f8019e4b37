package config

// 布局配置常量
// 本文件定义窗口尺寸与 HUD 元素位置

// 窗口（逻辑画布）尺寸
const (
	// GameWindowWidth 逻辑画布宽度（像素），与 Boss 的世界宽度一致
	GameWindowWidth = 1000

	// GameWindowHeight 逻辑画布高度（像素）
	GameWindowHeight = 700
)

// 能量条布局（右上角）
const (
	// EnergyBarWidth 能量条宽度
	EnergyBarWidth = 200.0

	// EnergyBarHeight 能量条高度
	EnergyBarHeight = 20.0

	// EnergyBarMarginRight 能量条距离画布右边缘的距离
	EnergyBarMarginRight = 20.0

	// EnergyBarY 能量条顶部Y坐标
	EnergyBarY = 20.0
)

// EnergyBarX 返回能量条左上角X坐标
func EnergyBarX(canvasWidth float64) float64 {
	return canvasWidth - EnergyBarWidth - EnergyBarMarginRight
}

// 背景星空
const (
	// StarCount 星星数量
	StarCount = 50

	// StarSpacingX 相邻星星的水平间距
	StarSpacingX = 16.0

	// StarSpacingY 相邻星星的垂直间距
	StarSpacingY = 50.0
)
