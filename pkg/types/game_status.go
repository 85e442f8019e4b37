package types

// GameStatus 游戏顶层状态
//
// 状态转换：
//
//	NotStarted --Start--> Running <--TogglePause--> Paused
//	Running --(血量<=0)--> Ended --Restart--> NotStarted
type GameStatus int

const (
	// StatusNotStarted 未开始（显示开始界面）
	StatusNotStarted GameStatus = iota
	// StatusRunning 运行中
	StatusRunning
	// StatusPaused 暂停（模拟冻结，渲染继续）
	StatusPaused
	// StatusEnded 游戏结束（保留最终状态用于显示）
	StatusEnded
)

// String 返回状态名称
func (s GameStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Started 报告游戏是否已经开始（包括暂停和结束）
func (s GameStatus) Started() bool {
	return s != StatusNotStarted
}
