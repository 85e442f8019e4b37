package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/types"
	"github.com/decker502/planewar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneView 渲染器读取的只读场景接口
type SceneView interface {
	VisitEntities(visit func(game.EntityView))
	HUD() game.HUD
}

// 调试字体的字形尺寸（像素）
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// overlayFadeFrames 暂停/结束遮罩淡入所需的帧数
const overlayFadeFrames = 20

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x33, 0xff}
	overlayColor    = color.NRGBA{0x00, 0x00, 0x00, 0xb3}
	gameOverColor   = color.NRGBA{0x00, 0x00, 0x00, 0xcc}
	barBackColor    = color.NRGBA{0x00, 0x00, 0x00, 0x80}

	energyRed    = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	energyOrange = color.NRGBA{0xff, 0x80, 0x00, 0xff}
	energyYellow = color.NRGBA{0xff, 0xff, 0x00, 0xff}
	energyGreen  = color.NRGBA{0x00, 0xff, 0x00, 0xff}
)

// playerPalette 玩家配色：主体、机翼、引擎、护盾
type playerPalette struct {
	main, wing, engine, shield color.RGBA
}

var playerPalettes = [...]playerPalette{
	{
		main:   color.RGBA{0x00, 0xff, 0x00, 0xff},
		wing:   color.RGBA{0x00, 0xcc, 0x00, 0xff},
		engine: color.RGBA{0xff, 0xff, 0x00, 0xff},
		shield: color.RGBA{0x00, 0xff, 0xff, 0xff},
	},
	{
		main:   color.RGBA{0xff, 0x00, 0x00, 0xff},
		wing:   color.RGBA{0xcc, 0x00, 0x00, 0xff},
		engine: color.RGBA{0xff, 0x99, 0x99, 0xff},
		shield: color.RGBA{0xff, 0x00, 0xff, 0xff},
	},
}

// RenderSystem 用 vector 图形绘制整个画面
//
// 渲染是只读的：实体通过 SceneView.VisitEntities 逐个提供，
// 渲染器不持有也不修改任何模拟状态。
// 粒子与旋转图形通过 DrawTriangles 批量绘制，顶点缓冲每帧复用。
type RenderSystem struct {
	width, height float64

	frames int // 已绘制的帧数，用于星空滚动与闪烁

	// 遮罩淡入：状态变化后重新计数
	lastStatus    types.GameStatus
	overlayFrames int

	whitePixel *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16

	// 粒子单独批量绘制，在所有实体之后统一提交
	particleVertices []ebiten.Vertex
	particleIndices  []uint16
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(width, height float64) *RenderSystem {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &RenderSystem{
		width:            width,
		height:           height,
		whitePixel:       img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:         make([]ebiten.Vertex, 0, 64),
		indices:          make([]uint16, 0, 96),
		particleVertices: make([]ebiten.Vertex, 0, 4000), // 支持 1000 个粒子（每粒子 4 顶点）
		particleIndices:  make([]uint16, 0, 6000),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, scene SceneView) {
	s.frames++
	millis := float64(s.frames) * 1000 / 60
	hud := scene.HUD()
	if hud.Status != s.lastStatus {
		s.lastStatus = hud.Status
		s.overlayFrames = 0
	}
	s.overlayFrames++

	screen.Fill(backgroundColor)
	s.drawStars(screen, millis)

	if hud.Status == types.StatusNotStarted {
		s.drawStartScreen(screen, hud)
		return
	}

	s.particleVertices = s.particleVertices[:0]
	s.particleIndices = s.particleIndices[:0]

	scene.VisitEntities(func(v game.EntityView) {
		switch v.Kind {
		case types.KindPlayer:
			s.drawPlayer(screen, v, millis)
		case types.KindEnemy:
			s.drawEnemy(screen, v)
		case types.KindBoss:
			s.drawBoss(screen, v)
		case types.KindBullet:
			s.drawBullet(screen, v)
		case types.KindEnemyBullet:
			s.drawEnemyBullet(screen, v)
		case types.KindPowerUp:
			s.drawPowerUp(screen, v)
		case types.KindParticle:
			s.appendParticle(v)
		}
	})
	s.flushParticles(screen)

	s.drawHUD(screen, hud)
	s.drawEnergyBar(screen, hud, millis)

	switch hud.Status {
	case types.StatusPaused:
		s.drawPauseScreen(screen, hud)
	case types.StatusEnded:
		s.drawGameOver(screen, hud)
	}
}

// StarPosition 计算第 i 颗星在 millis 时刻的位置
// 星星横向缓慢摆动并持续向下滚动，超出画布后从顶部重新出现
func StarPosition(i int, millis, width, height float64) (x, y float64) {
	fi := float64(i)
	x = math.Mod(math.Sin(millis*0.0005+fi)*100+width/2+fi*config.StarSpacingX, width)
	if x < 0 {
		x += width
	}
	y = math.Mod(millis*0.05+fi*config.StarSpacingY, height)
	return x, y
}

func (s *RenderSystem) drawStars(screen *ebiten.Image, millis float64) {
	for i := 0; i < config.StarCount; i++ {
		x, y := StarPosition(i, millis, s.width, s.height)
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, 1, color.White, false)
	}
}

// drawPlayer 绘制玩家飞机：机身、机翼、机头、引擎和护盾
// 能量爆发时整机闪烁
func (s *RenderSystem) drawPlayer(screen *ebiten.Image, v game.EntityView, millis float64) {
	pal := playerPalettes[0]
	if v.PlayerIndex > 0 {
		pal = playerPalettes[1]
	}
	alpha := 1.0
	if v.Burst {
		alpha = 0.8 + math.Sin(millis*0.01)*0.2
	}

	x, y := float32(v.X), float32(v.Y)
	vector.DrawFilledRect(screen, x+22, y+45, 16, 15, fade(pal.main, alpha), true)
	vector.DrawFilledRect(screen, x, y+30, 60, 12, fade(pal.wing, alpha), true)
	s.fillPolygon(screen, fade(pal.main, alpha), x+30, y, x+15, y+30, x+45, y+30)
	vector.DrawFilledRect(screen, x+12, y+60, 9, 12, fade(pal.engine, alpha), true)
	vector.DrawFilledRect(screen, x+39, y+60, 9, 12, fade(pal.engine, alpha), true)

	cx, cy := float32(v.X+v.Width/2), float32(v.Y+v.Height/2)
	vector.StrokeCircle(screen, cx, cy, 35, 2, fade(pal.shield, alpha), true)
	if v.Burst {
		vector.StrokeCircle(screen, cx, cy, 40, 4, fade(pal.main, alpha*0.4), true)
	}
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, v game.EntityView) {
	x, y := float32(v.X), float32(v.Y)
	red := color.RGBA{0xff, 0x00, 0x00, 0xff}

	vector.DrawFilledRect(screen, x+18.75, y+10, 12.5, 30, red, true)
	vector.DrawFilledRect(screen, x, y+18.75, 50, 10, color.RGBA{0xcc, 0x00, 0x00, 0xff}, true)
	s.fillPolygon(screen, red, x+25, y+40, x+10, y+10, x+40, y+10)

	s.drawHealthBar(screen, x+6.25, y-10, 37.5, 5, v.HealthFraction, red, color.RGBA{0x00, 0xff, 0x00, 0xff})
}

func (s *RenderSystem) drawBoss(screen *ebiten.Image, v game.EntityView) {
	x, y := float32(v.X), float32(v.Y)
	armor := color.RGBA{0x44, 0x44, 0x44, 0xff}
	engine := color.RGBA{0xff, 0x66, 0x00, 0xff}

	vector.DrawFilledRect(screen, x+25, y+18.75, 50, 37.5, v.Color, true)
	vector.DrawFilledRect(screen, x, y+31.25, 100, 18.75, color.RGBA{0x66, 0x00, 0x00, 0xff}, true)
	s.fillPolygon(screen, color.RGBA{0xcc, 0x00, 0x00, 0xff}, x+50, y+56.25, x+18.75, y+18.75, x+81.25, y+18.75)
	vector.DrawFilledRect(screen, x+12.5, y+25, 75, 10, armor, true)
	vector.DrawFilledRect(screen, x+12.5, y+40, 75, 10, armor, true)
	vector.DrawFilledRect(screen, x+6.25, y+62.5, 10, 12.5, engine, true)
	vector.DrawFilledRect(screen, x+83.75, y+62.5, 10, 12.5, engine, true)

	s.drawHealthBar(screen, x+12.5, y-15, 75, 7.5, v.HealthFraction,
		color.RGBA{0x33, 0x00, 0x00, 0xff}, color.RGBA{0xff, 0x00, 0x00, 0xff})
	printCentered(screen, "BOSS", float64(x)+v.Width/2, int(v.Y)-38)
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, x, y, w, h float32, fraction float64, back, front color.RGBA) {
	fraction = math.Max(0, math.Min(1, fraction))
	vector.DrawFilledRect(screen, x, y, w, h, back, false)
	vector.DrawFilledRect(screen, x, y, w*float32(fraction), h, front, false)
}

// drawBullet 按发射角旋转绘制玩家子弹，非普通弹带尾迹
func (s *RenderSystem) drawBullet(screen *ebiten.Image, v game.EntityView) {
	cx, cy := v.X+v.Width/2, v.Y+v.Height/2
	hw, hh := v.Width/2, v.Height/2

	s.fillRotatedRect(screen, cx, cy, -hw, -hh, v.Width, v.Height, v.Rotation, v.Color)

	coreWidth := 2.0
	switch v.Projectile {
	case types.ProjectileEnhanced, types.ProjectileSpiral:
		coreWidth = 4
	case types.ProjectileUltimate:
		coreWidth = 6
	}
	s.fillRotatedRect(screen, cx, cy, -coreWidth/2, -hh, coreWidth, v.Height, v.Rotation, color.RGBA{0xff, 0xff, 0xff, 0xff})

	if v.Projectile != types.ProjectileNormal {
		s.fillRotatedRect(screen, cx, cy, -hw, hh, v.Width, 8, v.Rotation, color.RGBA{0xff, 0xff, 0x00, 0x4c})
	}
}

func (s *RenderSystem) drawEnemyBullet(screen *ebiten.Image, v game.EntityView) {
	x, y := float32(v.X), float32(v.Y)
	w, h := float32(v.Width), float32(v.Height)
	vector.DrawFilledRect(screen, x, y, w, h, v.Color, true)
	vector.DrawFilledRect(screen, x+1, y, w-2, h, color.RGBA{0xff, 0x66, 0x00, 0xff}, true)
}

// drawPowerUp 绘制旋转的能量豆和外圈光环
func (s *RenderSystem) drawPowerUp(screen *ebiten.Image, v game.EntityView) {
	cx, cy := v.X+v.Width/2, v.Y+v.Height/2
	s.fillRotatedRect(screen, cx, cy, -12, -12, 24, 24, v.Rotation, v.Color)
	s.fillRotatedRect(screen, cx, cy, -8, -8, 16, 16, v.Rotation, color.RGBA{0xff, 0xff, 0xff, 0xff})
	s.fillRotatedRect(screen, cx, cy, -4, -4, 8, 8, v.Rotation, v.Color)
	vector.StrokeCircle(screen, float32(cx), float32(cy), 18, 2, v.Color, true)
}

// appendParticle 把粒子加入批量顶点缓冲
func (s *RenderSystem) appendParticle(v game.EntityView) {
	if len(s.particleVertices)+4 > math.MaxUint16 {
		return
	}
	r, g, b, a := vertexColor(v.Color, v.Alpha)
	x0, y0 := float32(v.X), float32(v.Y)
	x1, y1 := x0+float32(v.Width), y0+float32(v.Height)

	base := uint16(len(s.particleVertices))
	s.particleVertices = append(s.particleVertices,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 1, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	)
	s.particleIndices = append(s.particleIndices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func (s *RenderSystem) flushParticles(screen *ebiten.Image) {
	if len(s.particleVertices) == 0 {
		return
	}
	screen.DrawTriangles(s.particleVertices, s.particleIndices, s.whitePixel, &ebiten.DrawTrianglesOptions{})
}

// fillRotatedRect 绘制绕 (cx, cy) 旋转的矩形
// (ox, oy) 为矩形左上角相对旋转中心的偏移
func (s *RenderSystem) fillRotatedRect(screen *ebiten.Image, cx, cy, ox, oy, w, h, angle float64, clr color.RGBA) {
	sin, cos := math.Sincos(angle)
	corner := func(dx, dy float64) (float32, float32) {
		return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
	}
	x0, y0 := corner(ox, oy)
	x1, y1 := corner(ox+w, oy)
	x2, y2 := corner(ox+w, oy+h)
	x3, y3 := corner(ox, oy+h)
	s.fillPolygon(screen, clr, x0, y0, x1, y1, x2, y2, x3, y3)
}

// fillPolygon 以扇形三角剖分填充凸多边形
// pts 依次为 x0, y0, x1, y1, ...
func (s *RenderSystem) fillPolygon(screen *ebiten.Image, clr color.RGBA, pts ...float32) {
	n := len(pts) / 2
	if n < 3 {
		return
	}
	r, g, b, a := vertexColor(clr, 1)

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for i := 0; i < n; i++ {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: pts[2*i], DstY: pts[2*i+1],
			SrcX: 0, SrcY: 0,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < n-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.vertices, s.indices, s.whitePixel, op)
}

// EnergyBarColor 能量条填充颜色
//
//	< 25% 红，< 50% 橙，< 75% 黄，其余绿；充满时为随 millis 闪烁的金色
func EnergyBarColor(fraction float64, full bool, millis float64) color.NRGBA {
	if full {
		alpha := 0.8 + 0.2*math.Sin(millis*0.01)
		return color.NRGBA{0xff, 0xd7, 0x00, uint8(math.Round(alpha * 255))}
	}
	switch {
	case fraction < 0.25:
		return energyRed
	case fraction < 0.5:
		return energyOrange
	case fraction < 0.75:
		return energyYellow
	default:
		return energyGreen
	}
}

func (s *RenderSystem) drawEnergyBar(screen *ebiten.Image, hud game.HUD, millis float64) {
	x := float32(config.EnergyBarX(s.width))
	y := float32(config.EnergyBarY)
	w := float32(config.EnergyBarWidth)
	h := float32(config.EnergyBarHeight)

	vector.DrawFilledRect(screen, x-2, y-2, w+4, h+4, barBackColor, false)
	fill := EnergyBarColor(hud.EnergyFraction(), hud.EnergyFull(), millis)
	vector.DrawFilledRect(screen, x, y, w*float32(hud.EnergyFraction()), h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)

	center := float64(x + w/2)
	printCentered(screen, "Energy: "+hud.EnergyText, center, int(y+h)+4)

	switch {
	case hud.EnergyBurstActive:
		printCentered(screen, fmt.Sprintf("BURST: %d left", int(math.Ceil(hud.Energy))), center, int(y)-18)
	case hud.EnergyFull():
		printCentered(screen, "Press SPACE for energy burst!", center, int(y)-18)
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, hud game.HUD) {
	levels := make([]string, len(hud.WeaponLevels))
	for i, l := range hud.WeaponLevels {
		levels[i] = fmt.Sprintf("P%d Lv%d", i+1, l)
	}
	lines := []string{
		fmt.Sprintf("Score: %d", hud.Score),
		fmt.Sprintf("HP: %s", hud.HealthText),
		fmt.Sprintf("Time: %s", hud.TimeText),
		strings.Join(levels, "  "),
		fmt.Sprintf("Difficulty: %s", hud.Difficulty),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*glyphHeight)
	}
}

func (s *RenderSystem) drawStartScreen(screen *ebiten.Image, hud game.HUD) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), overlayColor, false)

	mode := onOff(hud.TwoPlayerMode)
	cx := s.width / 2
	cy := int(s.height / 2)
	printCentered(screen, "PLANE WAR", cx, cy-60)
	printCentered(screen, "Click or press ENTER to start", cx, cy)
	printCentered(screen, fmt.Sprintf("[1/2/3] Difficulty: %s", hud.Difficulty), cx, cy+30)
	printCentered(screen, fmt.Sprintf("[T] Two players: %s", mode), cx, cy+50)
	printCentered(screen, "P1: WASD   P2: Arrows   P/Esc: pause   R: restart", cx, cy+80)
	printCentered(screen, audioLine(hud), cx, cy+100)
}

// audioLine 音频开关与音量提示
func audioLine(hud game.HUD) string {
	return fmt.Sprintf("[M] Music: %s %s   [N] Sound: %s %s   [-/=] Volume",
		onOff(hud.MusicEnabled), hud.MusicVolume, onOff(hud.SoundEnabled), hud.SoundVolume)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// OverlayAlpha 遮罩在状态切换后第 frames 帧的透明度
// 前 overlayFadeFrames 帧按三次方缓出从 0 过渡到 target
func OverlayAlpha(frames int, target uint8) uint8 {
	t := utils.EaseOutCubic(float64(frames) / overlayFadeFrames)
	return uint8(math.Round(utils.Lerp(0, float64(target), t)))
}

// fadedOverlay 返回按当前淡入进度调整透明度的遮罩色
func (s *RenderSystem) fadedOverlay(c color.NRGBA) color.NRGBA {
	c.A = OverlayAlpha(s.overlayFrames, c.A)
	return c
}

func (s *RenderSystem) drawPauseScreen(screen *ebiten.Image, hud game.HUD) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), s.fadedOverlay(overlayColor), false)
	printCentered(screen, "PAUSED", s.width/2, int(s.height/2)-10)
	printCentered(screen, "Press P to resume", s.width/2, int(s.height/2)+20)
	printCentered(screen, audioLine(hud), s.width/2, int(s.height/2)+40)
}

func (s *RenderSystem) drawGameOver(screen *ebiten.Image, hud game.HUD) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), s.fadedOverlay(gameOverColor), false)
	printCentered(screen, "GAME OVER", s.width/2, int(s.height/2)-10)
	printCentered(screen, fmt.Sprintf("Final score: %d", hud.Score), s.width/2, int(s.height/2)+40)
	best := fmt.Sprintf("Best: %d", hud.BestScore)
	if hud.NewRecord {
		best = "NEW RECORD!"
	}
	printCentered(screen, best, s.width/2, int(s.height/2)+55)
	printCentered(screen, "Press R to restart", s.width/2, int(s.height/2)+80)
}

// printCentered 以 centerX 为中心绘制调试字体文本
func printCentered(screen *ebiten.Image, text string, centerX float64, y int) {
	ebitenutil.DebugPrintAt(screen, text, TextOffsetX(text, centerX), y)
}

// TextOffsetX 返回使文本水平居中的起始 X 坐标
func TextOffsetX(text string, centerX float64) int {
	return int(centerX) - len(text)*glyphWidth/2
}

// fade 按比例缩放颜色透明度（返回预乘颜色）
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// vertexColor 把颜色转换为顶点颜色分量（直通 alpha）
func vertexColor(c color.RGBA, alpha float64) (r, g, b, a float32) {
	alpha = math.Max(0, math.Min(1, alpha))
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff * float32(alpha)
}
