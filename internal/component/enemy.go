// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID  string // ID из библиотеки врагов
	Reward int    // Деньги за уничтожение
}
