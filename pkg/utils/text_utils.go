package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatClock 把秒数格式化为 mm:ss
// 超过 99 分钟时分钟位继续增长
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatHealth 格式化生命值为 "当前/上限"，当前值不显示负数
func FormatHealth(health, maxHealth float64) string {
	return formatNumber(math.Max(0, health)) + "/" + formatNumber(maxHealth)
}

// FormatEnergy 格式化能量为 "floor(能量)/上限"
func FormatEnergy(energy, maxEnergy float64) string {
	return formatNumber(math.Floor(math.Max(0, energy))) + "/" + formatNumber(maxEnergy)
}

// formatNumber 整数不带小数点，小数保留最短表示
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatVolume 把 0.0 ~ 1.0 的音量格式化为整数百分比
func FormatVolume(volume float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(math.Max(0, math.Min(1, volume))*100)))
}
