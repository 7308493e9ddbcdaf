package engine

import (
	"math/rand"

	"sprite-server/internal/domain"
	"sprite-server/pkg/dungeon"
)

// populateWorld расселяет монстров, NPC и предметы по сгенерированным
// комнатам. Стартовая комната остается безопасной: в нее попадает только
// торговец, монстры спавнятся начиная со второй комнаты.
func populateWorld(d *dungeon.Dungeon, w *domain.World, rng *rand.Rand) {
	if len(d.Rooms) == 0 {
		return
	}

	// NPC в стартовой комнате
	spawnInRoom(dungeon.Merchant, d.Rooms[0], d.Level, w, rng)

	for i := 1; i < len(d.Rooms); i++ {
		room := d.Rooms[i]

		switch room.Kind {
		case dungeon.RoomBoss:
			spawnInRoom(dungeon.Orc, room, d.Level, w, rng)

		case dungeon.RoomTreasure:
			spawnInRoom(dungeon.IronSword, room, d.Level, w, rng)
			spawnInRoom(dungeon.HealthPotion, room, d.Level, w, rng)

		default:
			// Шанс спавна врага
			if rng.Intn(10) < 7 {
				tmpl := dungeon.Goblin
				if d.Level > 3 || rng.Intn(10) < 3 {
					tmpl = dungeon.Orc
				}
				spawnInRoom(tmpl, room, d.Level, w, rng)
			}
			if rng.Intn(10) < 3 {
				tmpl := dungeon.Bread
				if rng.Intn(2) == 0 {
					tmpl = dungeon.HealthPotion
				}
				spawnInRoom(tmpl, room, d.Level, w, rng)
			}
		}
	}
}

// spawnInRoom ставит сущность около центра комнаты со случайным сдвигом,
// чтобы спавны не стояли друг на друге. Непроходимая клетка откатывает
// сдвиг к центру.
func spawnInRoom(tmpl dungeon.EntityTemplate, room dungeon.Room, level int, w *domain.World, rng *rand.Rand) {
	pos := room.Center().Shift(rng.Intn(3)-1, rng.Intn(3)-1)
	if w.IsTileBlocking(pos) {
		pos = room.Center()
	}
	if w.IsTileBlocking(pos) {
		return // Ужатая комната без пола
	}
	w.AddEntity(tmpl.Spawn(pos, level, rng))
}
