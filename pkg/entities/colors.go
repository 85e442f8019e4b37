package entities

import "image/color"

// 调色板
var (
	ColorYellow    = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorOrange    = color.RGBA{0xff, 0x66, 0x00, 0xff}
	ColorRed       = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColorRedOrange = color.RGBA{0xff, 0x44, 0x00, 0xff}
	ColorGreen     = color.RGBA{0x00, 0xff, 0x00, 0xff}
	ColorCyan      = color.RGBA{0x00, 0xff, 0xff, 0xff}
	ColorWhite     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorEnemyShot = color.RGBA{0xff, 0x33, 0x00, 0xff}
	ColorBoss      = color.RGBA{0x99, 0x00, 0x00, 0xff}
)

// rainbow 终极弹的循环配色
var rainbow = [...]color.RGBA{
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0x66, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x00, 0x66, 0xff, 0xff},
	{0x66, 0x00, 0xff, 0xff},
}
