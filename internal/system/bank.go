// internal/system/bank.go
package system

// Treasury is the slice of the economy systems need for payouts.
// Это помогает избежать циклических зависимостей с engine.
type Treasury interface {
	Credit(amount int)
}

// LifeBank is the slice of the economy the path mover needs.
type LifeBank interface {
	LoseLife()
}
