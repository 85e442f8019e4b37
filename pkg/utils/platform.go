//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，设置 PLANEWAR_MOBILE_EMULATE=1 可以在桌面上模拟移动端输入
func IsMobile() bool {
	return os.Getenv("PLANEWAR_MOBILE_EMULATE") == "1"
}
