package types

// EntityKind 可渲染实体的类别，用于只读渲染通道
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBoss
	KindBullet
	KindEnemyBullet
	KindPowerUp
	KindParticle
)

// String 返回实体类别名称
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemyBullet"
	case KindPowerUp:
		return "powerUp"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}
