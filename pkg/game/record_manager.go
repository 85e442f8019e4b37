package game

import (
	"fmt"
	"log"

	"github.com/decker502/planewar/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreRecord 某个难度下的最好成绩
type ScoreRecord struct {
	Score   int `yaml:"score"`
	Seconds int `yaml:"seconds"` // 取得该成绩时的存活时间
}

// RecordData 最好成绩表，按难度名索引（easy / normal / hard）
// 只记录结算后的成绩，不保存对局进度
type RecordData struct {
	Best map[string]ScoreRecord `yaml:"best"`
}

// RecordManager 最好成绩管理器
//
// 职责：
//   - 每局结束时提交成绩，刷新对应难度的最好成绩
//   - 通过 gdata 持久化为 YAML
//
// gdataManager 为 nil 时只在内存中记录。
type RecordManager struct {
	gdataManager *gdata.Manager
	data         *RecordData
}

// 存储路径常量
const (
	recordObject   = "records"
	recordProperty = "best_scores"
)

// NewRecordManager 创建成绩管理器并加载已有记录
// 加载失败时从空表开始，错误只记录日志
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		data:         newRecordData(),
	}
	if err := rm.Load(); err != nil {
		log.Printf("[RecordManager] Warning: %v (starting with empty records)", err)
	}
	return rm
}

func newRecordData() *RecordData {
	return &RecordData{Best: make(map[string]ScoreRecord)}
}

// Load 从 gdata 加载记录
func (rm *RecordManager) Load() error {
	if rm.gdataManager == nil || !rm.gdataManager.ObjectPropExists(recordObject, recordProperty) {
		rm.data = newRecordData()
		return nil
	}

	raw, err := rm.gdataManager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		rm.data = newRecordData()
		return fmt.Errorf("failed to load records: %w", err)
	}

	loaded := newRecordData()
	if err := yaml.Unmarshal(raw, loaded); err != nil {
		rm.data = newRecordData()
		return fmt.Errorf("failed to parse records: %w", err)
	}
	if loaded.Best == nil {
		loaded.Best = make(map[string]ScoreRecord)
	}

	rm.data = loaded
	log.Printf("[RecordManager] Loaded %d records", len(loaded.Best))
	return nil
}

// Save 把记录写入 gdata，降级模式下不做任何事
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(rm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordObject, recordProperty, raw); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Best 返回指定难度的最好成绩
func (rm *RecordManager) Best(d types.Difficulty) ScoreRecord {
	return rm.data.Best[d.String()]
}

// Submit 提交一局的最终成绩
// 严格高于原记录时更新并立即保存，返回是否刷新了记录
func (rm *RecordManager) Submit(d types.Difficulty, score, seconds int) bool {
	key := d.String()
	if prev, ok := rm.data.Best[key]; ok && score <= prev.Score {
		return false
	}
	if score <= 0 {
		return false
	}

	rm.data.Best[key] = ScoreRecord{Score: score, Seconds: seconds}
	log.Printf("[RecordManager] New best on %s: %d (%ds)", key, score, seconds)
	if err := rm.Save(); err != nil {
		log.Printf("[RecordManager] Failed to persist record: %v", err)
	}
	return true
}
