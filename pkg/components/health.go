package components

// HealthComponent 存储可被攻击实体的生命值
//
// Current 始终被限制在 [0, Max] 范围内，任何写入都会立即钳制，
// 因此外部读取永远不会看到越界值。
type HealthComponent struct {
	current float64
	max     float64
}

// NewHealthComponent 创建满血的生命值组件
func NewHealthComponent(max float64) HealthComponent {
	if max < 0 {
		max = 0
	}
	return HealthComponent{current: max, max: max}
}

// Current 返回当前生命值
func (h *HealthComponent) Current() float64 {
	return h.current
}

// Max 返回最大生命值
func (h *HealthComponent) Max() float64 {
	return h.max
}

// Fraction 返回当前生命值占最大值的比例（用于血条）
func (h *HealthComponent) Fraction() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}

// Damage 扣除生命值，返回扣除后是否已耗尽（<= 0）
func (h *HealthComponent) Damage(amount float64) bool {
	h.set(h.current - amount)
	return h.current <= 0
}

// Heal 回复生命值（不超过上限）
func (h *HealthComponent) Heal(amount float64) {
	h.set(h.current + amount)
}

// RaiseMax 提高生命值上限，不改变当前值
func (h *HealthComponent) RaiseMax(amount float64) {
	h.max += amount
	if h.max < 0 {
		h.max = 0
	}
	h.set(h.current)
}

// Reset 将上限和当前值同时重置为 max
func (h *HealthComponent) Reset(max float64) {
	*h = NewHealthComponent(max)
}

// IsDepleted 报告生命值是否已耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.current <= 0
}

func (h *HealthComponent) set(v float64) {
	if v < 0 {
		v = 0
	}
	if v > h.max {
		v = h.max
	}
	h.current = v
}
