package components

// CollisionComponent 定义实体的碰撞检测边界框
// 坐标系与画布一致：X/Y 为左上角，Width/Height 为尺寸（像素）
type CollisionComponent struct {
	X      float64 // 左上角X坐标
	Y      float64 // 左上角Y坐标
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// CenterX 返回碰撞盒中心X坐标
func (c CollisionComponent) CenterX() float64 {
	return c.X + c.Width/2
}

// CenterY 返回碰撞盒中心Y坐标
func (c CollisionComponent) CenterY() float64 {
	return c.Y + c.Height/2
}

// Overlaps 检查两个轴对齐碰撞盒是否重叠
// 四条边都使用严格不等式，边界刚好接触不算碰撞
// 该判定是对称的：a.Overlaps(b) == b.Overlaps(a)
func (c CollisionComponent) Overlaps(o CollisionComponent) bool {
	return c.X < o.X+o.Width &&
		c.X+c.Width > o.X &&
		c.Y < o.Y+o.Height &&
		c.Y+c.Height > o.Y
}
