// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"   // Data: номер волны (int)
	WaveCompleted EventType = "WaveCompleted" // Data: номер волны (int)
	EnemySpawned  EventType = "EnemySpawned"  // Data: types.EntityID
	EnemyKilled   EventType = "EnemyKilled"   // Data: types.EntityID
	EnemyLeaked   EventType = "EnemyLeaked"   // Data: types.EntityID
	TowerFired    EventType = "TowerFired"    // Data: types.EntityID башни
	TowerPlaced   EventType = "TowerPlaced"   // Data: grid.Point
	TowerSold     EventType = "TowerSold"     // Data: grid.Point
	GameWon       EventType = "GameWon"
	GameLost      EventType = "GameLost"
)
