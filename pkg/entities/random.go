package entities

// RandomSource 随机数来源
// 生产环境使用 *rand.Rand，测试中注入脚本化的序列以获得确定结果
type RandomSource interface {
	Float64() float64
}

// spread 返回 [-scale/2, scale/2) 范围内的随机偏移
func spread(r RandomSource, scale float64) float64 {
	return (r.Float64() - 0.5) * scale
}
