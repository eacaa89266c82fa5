package sim

import "fmt"

// infect applies one parasite hit and, on the killing hit, converts the walls
// around blastCenter into nutrients. It is the single place where combat
// touches the map, so both the player attack and the minion auto-attack share
// the same once-only death effect. The blast is logged under the enemy.
func infect(es *EntityState, grid *TileMap, log *SimLog, tick, amount int, blastCenter Position, radius int) (killed bool, converted int) {
	if !es.DamageEnemy(amount) {
		return false, 0
	}
	converted = grid.ConvertWallsToNutrientAround(blastCenter, radius)
	log.Add(tick, "enemy", "map", "blast",
		fmt.Sprintf("%d walls to nutrients around %v", converted, blastCenter), float64(converted))
	return true, converted
}
