package dungeon

import (
	"math/rand"

	"sprite-server/internal/domain"
)

// ConnectRooms прорезает L-образные коридоры между последовательными
// комнатами (в порядке генерации). Эта цепочка - единственная гарантия
// связности уровня: соседство по BSP-дереву не используется.
func ConnectRooms(rooms []Room, w *domain.World, rng *rand.Rand) {
	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		curr := rooms[i].Center()

		if rng.Intn(2) == 0 {
			carveHorizontal(w, prev.X, curr.X, prev.Y)
			carveVertical(w, prev.Y, curr.Y, curr.X)
		} else {
			carveVertical(w, prev.Y, curr.Y, prev.X)
			carveHorizontal(w, prev.X, curr.X, curr.Y)
		}
	}
}

func carveHorizontal(w *domain.World, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		carveFloor(w, domain.Position{X: x, Y: y})
	}
}

func carveVertical(w *domain.World, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		carveFloor(w, domain.Position{X: x, Y: y})
	}
}

// carveFloor повышает стену до пола. Двери и уже прорезанный пол не трогаем:
// коридор не должен ломать проемы комнат.
func carveFloor(w *domain.World, p domain.Position) {
	t, ok := w.GetTile(p)
	if !ok || t.Type != domain.TileWall {
		return
	}
	w.SetTile(p, domain.NewFloorTile())
}
