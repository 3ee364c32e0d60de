// internal/component/wave.go
package component

import "grid-defense/internal/types"

// SpawnEntry is one scheduled enemy. Entries are consumed strictly in
// order as game time passes At.
type SpawnEntry struct {
	EnemyID string
	At      types.Timestamp
}

// Wave is the expanded, in-flight form of a wave definition.
type Wave struct {
	Number int
	Queue  []SpawnEntry
	Cursor int // первый ещё не заспавненный элемент очереди
	Reward int
}

// SpawnedAll reports whether the whole queue has been consumed.
func (w *Wave) SpawnedAll() bool {
	return w.Cursor >= len(w.Queue)
}
