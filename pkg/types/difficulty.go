// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Difficulty 定义难度模式
type Difficulty int

const (
	// DifficultyNormal 普通（默认值）
	DifficultyNormal Difficulty = iota
	// DifficultyEasy 简单
	DifficultyEasy
	// DifficultyHard 困难
	DifficultyHard
)

// String 返回难度的字符串表示（与配置文件中的键一致）
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label 返回界面上显示的难度名称
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "简单"
	case DifficultyHard:
		return "困难"
	default:
		return "普通"
	}
}

// ParseDifficulty 将字符串解析为难度
// 接受 "easy" / "normal" / "hard"，空字符串视为 normal
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", s)
	}
}

// AllDifficulties 按从易到难的顺序返回所有难度
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}
