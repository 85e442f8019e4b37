package config

import (
	"fmt"
	"os"

	"github.com/decker502/planewar/pkg/embedded"
	"github.com/decker502/planewar/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultBalancePath 内置平衡配置在嵌入文件系统中的路径
const DefaultBalancePath = "data/balance.yaml"

// WorldConfig 画布与时间步参数
type WorldConfig struct {
	Width          float64 `yaml:"width"`          // 画布宽度（像素）
	Height         float64 `yaml:"height"`         // 画布高度（像素）
	BossWorldWidth float64 `yaml:"bossWorldWidth"` // Boss 水平活动范围（固定世界宽度）
	MaxDeltaTime   float64 `yaml:"maxDeltaTime"`   // 单帧最大 deltaTime（秒），防止卡顿后跳帧
}

// FireConfig 自动射击节奏
// interval = max(MinInterval, floor((BaseInterval - level*LevelStep) / Divisor))
type FireConfig struct {
	BaseInterval     float64 `yaml:"baseInterval"`
	LevelStep        float64 `yaml:"levelStep"`
	Divisor          float64 `yaml:"divisor"`
	MinInterval      float64 `yaml:"minInterval"`
	BurstDivisor     float64 `yaml:"burstDivisor"`     // 能量爆发时间隔除数
	BurstMinInterval float64 `yaml:"burstMinInterval"` // 能量爆发时最小间隔
}

// PlayerConfig 玩家飞机参数
type PlayerConfig struct {
	Width                float64    `yaml:"width"`
	Height               float64    `yaml:"height"`
	Speed                float64    `yaml:"speed"`                // 每帧单位移动像素
	BurstSpeedMultiplier float64    `yaml:"burstSpeedMultiplier"` // 能量爆发时的移动倍率
	SpawnOffsetY         float64    `yaml:"spawnOffsetY"`         // 出生点距离画布底部的距离
	Player2OffsetX       float64    `yaml:"player2OffsetX"`       // 2P 出生点相对 1P 的水平偏移
	MaxWeaponLevel       int        `yaml:"maxWeaponLevel"`
	StartHealth          float64    `yaml:"startHealth"`
	Fire                 FireConfig `yaml:"fire"`
}

// EnemyConfig 普通敌机参数
type EnemyConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallSpeed  float64 `yaml:"fallSpeed"`  // 下落速度（每帧单位像素）
	TrackSpeed float64 `yaml:"trackSpeed"` // 横向追踪速度（每帧单位像素）
	BaseHealth float64 `yaml:"baseHealth"` // 难度缩放前的基础血量
	SpawnY     float64 `yaml:"spawnY"`
	CullMargin float64 `yaml:"cullMargin"` // 超出画布底部多少像素后移除
}

// BossConfig Boss 参数
type BossConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	FallSpeed          float64 `yaml:"fallSpeed"`
	TrackSpeed         float64 `yaml:"trackSpeed"`
	BaseHealth         float64 `yaml:"baseHealth"`
	SpawnOffsetX       float64 `yaml:"spawnOffsetX"` // 出生点X = 画布宽度/2 - SpawnOffsetX
	SpawnY             float64 `yaml:"spawnY"`
	PhaseDuration      float64 `yaml:"phaseDuration"`   // 移动模式切换间隔（帧单位）
	StrafeAmplitude    float64 `yaml:"strafeAmplitude"` // 左右摆动幅度
	FireInterval       float64 `yaml:"fireInterval"`    // 射击间隔（帧单位）
	BulletSpeed        float64 `yaml:"bulletSpeed"`
	SpreadTargetOffset float64 `yaml:"spreadTargetOffset"` // 三发子弹瞄准点的水平间距
	SpreadMuzzleOffset float64 `yaml:"spreadMuzzleOffset"` // 三发子弹发射点的水平间距
}

// SpawnConfig 刷怪节奏与血量成长
type SpawnConfig struct {
	EnemyBaseInterval         float64 `yaml:"enemyBaseInterval"`    // 敌机基础间隔（帧单位）
	FrequencyStepSeconds      float64 `yaml:"frequencyStepSeconds"` // 每隔多少秒提升一次频率
	FrequencyStep             float64 `yaml:"frequencyStep"`        // 每次提升的频率比例
	BossInterval              float64 `yaml:"bossInterval"`         // Boss 检查间隔（帧单位）
	BossChance                float64 `yaml:"bossChance"`           // 每次检查生成 Boss 的概率
	PowerUpInterval           float64 `yaml:"powerUpInterval"`      // 能量豆间隔（帧单位）
	HealthGrowthSeconds       float64 `yaml:"healthGrowthSeconds"`  // 血量成长周期（秒）
	TwoPlayerHealthMultiplier float64 `yaml:"twoPlayerHealthMultiplier"`
}

// CombatConfig 伤害、得分与奖励
type CombatConfig struct {
	BulletDamage        float64 `yaml:"bulletDamage"`
	EnemyBulletDamage   float64 `yaml:"enemyBulletDamage"`
	BodyCollisionDamage float64 `yaml:"bodyCollisionDamage"`
	EnemyScore          int     `yaml:"enemyScore"`
	BossScore           int     `yaml:"bossScore"`
	BossMaxHealthBonus  float64 `yaml:"bossMaxHealthBonus"`
	BossHeal            float64 `yaml:"bossHeal"`
	PowerUpHeal         float64 `yaml:"powerUpHeal"`
	PointsPerSecond     int     `yaml:"pointsPerSecond"` // 存活每秒自动得分
}

// EnergyConfig 能量爆发参数
type EnergyConfig struct {
	Max             float64 `yaml:"max"`
	GainPerHit      float64 `yaml:"gainPerHit"`
	GainPerHitBurst float64 `yaml:"gainPerHitBurst"`
	DrainPerSecond  float64 `yaml:"drainPerSecond"`
}

// BalanceConfig 游戏平衡配置（对应 data/balance.yaml）
type BalanceConfig struct {
	World      WorldConfig        `yaml:"world"`
	Player     PlayerConfig       `yaml:"player"`
	Enemy      EnemyConfig        `yaml:"enemy"`
	Boss       BossConfig         `yaml:"boss"`
	Spawn      SpawnConfig        `yaml:"spawn"`
	Difficulty map[string]float64 `yaml:"difficulty"` // 难度 -> 血量倍率
	Combat     CombatConfig       `yaml:"combat"`
	Energy     EnergyConfig       `yaml:"energy"`
}

// DefaultBalance 返回内置的默认平衡配置
// 数值与 data/balance.yaml 保持一致，用于无嵌入资源的场景（如单元测试）
func DefaultBalance() *BalanceConfig {
	return &BalanceConfig{
		World: WorldConfig{
			Width:          GameWindowWidth,
			Height:         GameWindowHeight,
			BossWorldWidth: 1000,
			MaxDeltaTime:   0.05,
		},
		Player: PlayerConfig{
			Width:                60,
			Height:               60,
			Speed:                9,
			BurstSpeedMultiplier: 1.5,
			SpawnOffsetY:         120,
			Player2OffsetX:       30,
			MaxWeaponLevel:       10,
			StartHealth:          100,
			Fire: FireConfig{
				BaseInterval:     25,
				LevelStep:        2,
				Divisor:          3,
				MinInterval:      3,
				BurstDivisor:     1.5,
				BurstMinInterval: 1,
			},
		},
		Enemy: EnemyConfig{
			Width:      50,
			Height:     50,
			FallSpeed:  3,
			TrackSpeed: 1.5,
			BaseHealth: 5,
			SpawnY:     -50,
			CullMargin: 100,
		},
		Boss: BossConfig{
			Width:              100,
			Height:             75,
			FallSpeed:          1.5,
			TrackSpeed:         0.9,
			BaseHealth:         23,
			SpawnOffsetX:       40,
			SpawnY:             -80,
			PhaseDuration:      120,
			StrafeAmplitude:    6,
			FireInterval:       80,
			BulletSpeed:        3.6,
			SpreadTargetOffset: 30,
			SpreadMuzzleOffset: 15,
		},
		Spawn: SpawnConfig{
			EnemyBaseInterval:         200,
			FrequencyStepSeconds:      10,
			FrequencyStep:             0.1,
			BossInterval:              1600,
			BossChance:                0.3,
			PowerUpInterval:           1000,
			HealthGrowthSeconds:       10,
			TwoPlayerHealthMultiplier: 1.5,
		},
		Difficulty: map[string]float64{
			"easy":   0.65,
			"normal": 1.0,
			"hard":   1.5,
		},
		Combat: CombatConfig{
			BulletDamage:        1,
			EnemyBulletDamage:   15,
			BodyCollisionDamage: 15,
			EnemyScore:          10,
			BossScore:           100,
			BossMaxHealthBonus:  5,
			BossHeal:            5,
			PowerUpHeal:         10,
			PointsPerSecond:     2,
		},
		Energy: EnergyConfig{
			Max:             100,
			GainPerHit:      0.5,
			GainPerHitBurst: 0.1,
			DrainPerSecond:  25,
		},
	}
}

// DifficultyMultiplier 返回指定难度的血量倍率
// 配置中缺失的难度回退到 1.0
func (c *BalanceConfig) DifficultyMultiplier(d types.Difficulty) float64 {
	if m, ok := c.Difficulty[d.String()]; ok {
		return m
	}
	return 1.0
}

// LoadBalance 从嵌入文件系统加载平衡配置
// 参数：
//
//	filePath - 嵌入路径（如 DefaultBalancePath）
//
// 返回：
//
//	*BalanceConfig - 解析并验证后的配置
//	error - 读取、解析或验证失败
func LoadBalance(filePath string) (*BalanceConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", filePath, err)
	}
	cfg, err := ParseBalance(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// LoadBalanceFile 从磁盘加载平衡配置（用于 -balance 参数覆盖内置配置）
func LoadBalanceFile(filePath string) (*BalanceConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", filePath, err)
	}
	cfg, err := ParseBalance(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseBalance 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值，因此配置文件可以只覆盖部分数值
func ParseBalance(data []byte) (*BalanceConfig, error) {
	cfg := DefaultBalance()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}
	if err := validateBalance(cfg); err != nil {
		return nil, fmt.Errorf("invalid balance config: %w", err)
	}
	return cfg, nil
}

// validateBalance 验证配置的有效性
func validateBalance(cfg *BalanceConfig) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.MaxDeltaTime <= 0 {
		return fmt.Errorf("world.maxDeltaTime must be positive, got %v", cfg.World.MaxDeltaTime)
	}

	// 按声明顺序检查，多个字段无效时总是报告第一个
	sizes := []struct {
		name          string
		width, height float64
	}{
		{"player", cfg.Player.Width, cfg.Player.Height},
		{"enemy", cfg.Enemy.Width, cfg.Enemy.Height},
		{"boss", cfg.Boss.Width, cfg.Boss.Height},
	}
	for _, size := range sizes {
		if size.width <= 0 || size.height <= 0 {
			return fmt.Errorf("%s size must be positive, got %vx%v", size.name, size.width, size.height)
		}
	}

	if cfg.Player.MaxWeaponLevel < 1 || cfg.Player.MaxWeaponLevel > 10 {
		return fmt.Errorf("player.maxWeaponLevel must be between 1 and 10, got %d", cfg.Player.MaxWeaponLevel)
	}
	if cfg.Player.StartHealth <= 0 {
		return fmt.Errorf("player.startHealth must be positive, got %v", cfg.Player.StartHealth)
	}
	if cfg.Player.Fire.Divisor <= 0 || cfg.Player.Fire.BurstDivisor <= 0 {
		return fmt.Errorf("player.fire divisors must be positive")
	}

	intervals := []struct {
		name  string
		value float64
	}{
		{"spawn.enemyBaseInterval", cfg.Spawn.EnemyBaseInterval},
		{"spawn.bossInterval", cfg.Spawn.BossInterval},
		{"spawn.powerUpInterval", cfg.Spawn.PowerUpInterval},
		{"spawn.frequencyStepSeconds", cfg.Spawn.FrequencyStepSeconds},
		{"spawn.healthGrowthSeconds", cfg.Spawn.HealthGrowthSeconds},
		{"boss.phaseDuration", cfg.Boss.PhaseDuration},
		{"boss.fireInterval", cfg.Boss.FireInterval},
	}
	for _, iv := range intervals {
		if iv.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", iv.name, iv.value)
		}
	}

	if cfg.Spawn.BossChance < 0 || cfg.Spawn.BossChance > 1 {
		return fmt.Errorf("spawn.bossChance must be within [0, 1], got %v", cfg.Spawn.BossChance)
	}

	for _, d := range types.AllDifficulties() {
		m, ok := cfg.Difficulty[d.String()]
		if !ok {
			return fmt.Errorf("difficulty multiplier for %s is missing", d)
		}
		if m <= 0 {
			return fmt.Errorf("difficulty multiplier for %s must be positive, got %v", d, m)
		}
	}

	if cfg.Energy.Max <= 0 {
		return fmt.Errorf("energy.max must be positive, got %v", cfg.Energy.Max)
	}
	if cfg.Energy.DrainPerSecond < 0 {
		return fmt.Errorf("energy.drainPerSecond cannot be negative, got %v", cfg.Energy.DrainPerSecond)
	}

	return nil
}
