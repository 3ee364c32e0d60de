// internal/engine/tower_management.go
package engine

import (
	"log"

	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
	"grid-defense/pkg/grid"
)

// PlaceTower attempts to install a tower of the given type on a tile.
// Every unmet precondition (bad tile, occupied, unknown type, not
// enough money, game over) is a silent no-op: false, state unchanged.
func (g *Game) PlaceTower(cell grid.Point, defID string) bool {
	if g.Phase != PhasePlaying {
		return false
	}
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		log.Printf("PlaceTower: unknown tower definition %q", defID)
		return false
	}
	if !g.Grid.IsBuildable(cell) {
		return false
	}
	if _, occupied := g.towers[cell]; occupied {
		return false
	}
	if !g.Economy.Debit(def.Cost) {
		return false
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: float64(cell.X), Y: float64(cell.Y)}
	g.ECS.Towers[id] = &component.Tower{DefID: defID, Cell: cell}
	g.ECS.Combats[id] = &component.Combat{
		Damage:     def.Damage,
		Range:      def.Range,
		FireRateMS: float64(def.FireRate.Milliseconds()),
		// Свежая башня готова стрелять сразу.
		LastShotAt: g.GameTime - types.Timestamp(def.FireRate.Milliseconds()),
		Slows:      def.Slows,
	}
	g.towers[cell] = id

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: cell})
	return true
}

// SellTower removes the tower on a tile and refunds part of its cost.
func (g *Game) SellTower(cell grid.Point) bool {
	if g.Phase != PhasePlaying {
		return false
	}
	id, ok := g.towers[cell]
	if !ok {
		return false
	}

	tower := g.ECS.Towers[id]
	def := defs.TowerLibrary[tower.DefID]
	refund := int(float64(def.Cost) * config.SellRefundFactor)

	g.ECS.RemoveTower(id)
	delete(g.towers, cell)
	g.Economy.Credit(refund)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: cell})
	return true
}

// TowerAt returns the tower entity occupying a tile, 0 if none.
func (g *Game) TowerAt(cell grid.Point) types.EntityID {
	return g.towers[cell]
}
