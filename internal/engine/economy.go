// internal/engine/economy.go
package engine

// Ledger tracks the two shared resources: money and lives. Money moves
// only through tower costs, sell refunds, kill rewards and wave rewards;
// lives only ever go down, one per enemy that reaches the goal.
type Ledger struct {
	Money int
	Lives int
}

func NewLedger(money, lives int) *Ledger {
	return &Ledger{Money: money, Lives: lives}
}

func (l *Ledger) CanAfford(cost int) bool {
	return l.Money >= cost
}

// Debit withdraws cost if the balance covers it.
func (l *Ledger) Debit(cost int) bool {
	if !l.CanAfford(cost) {
		return false
	}
	l.Money -= cost
	return true
}

func (l *Ledger) Credit(amount int) {
	l.Money += amount
}

func (l *Ledger) LoseLife() {
	l.Lives--
}
