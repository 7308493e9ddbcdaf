package dungeon

import (
	"math/rand"

	"sprite-server/internal/domain"
)

// ApplyToWorld наносит сгенерированное подземелье на мир:
//
//  1. все клетки в границах заполняются глухой стеной;
//  2. интерьер каждой комнаты (строго внутри прямоугольника) становится полом,
//     граница остается стеной;
//  3. в каждой комнате 1-2 двери в случайных точках периметра;
//  4. коридоры между последовательными комнатами;
//  5. игрок ставится в центр первой комнаты, клетка помечается увиденной.
//
// Постусловие: каждая координата в [0,width) x [0,height) имеет клетку.
// До полного завершения всех фаз запросы к миру невалидны - вызывающий
// не должен обращаться к миру между фазами.
func ApplyToWorld(d *Dungeon, w *domain.World, rng *rand.Rand) {
	// 1. Сплошная стена
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			w.SetTile(domain.Position{X: x, Y: y}, domain.NewWallTile())
		}
	}

	// 2. Комнаты: пол внутри, стена по границе
	for _, room := range d.Rooms {
		for y := room.Y; y < room.Y+room.H; y++ {
			for x := room.X; x < room.X+room.W; x++ {
				p := domain.Position{X: x, Y: y}
				onBorder := x == room.X || x == room.X+room.W-1 ||
					y == room.Y || y == room.Y+room.H-1
				if onBorder {
					w.SetTile(p, domain.NewWallTile())
				} else {
					w.SetTile(p, domain.NewFloorTile())
				}
			}
		}
	}

	// 3. Двери
	for _, room := range d.Rooms {
		placeDoors(room, w, rng)
	}

	// 4. Коридоры
	ConnectRooms(d.Rooms, w, rng)

	// 5. Стартовая позиция игрока
	if len(d.Rooms) > 0 {
		start := d.Rooms[0].Center()
		w.Player.Pos = start
		w.MarkTileDiscovered(start)
	}
}

// placeDoors заменяет 1-2 случайные точки периметра комнаты
// (не углы) на открытую дверь.
func placeDoors(room Room, w *domain.World, rng *rand.Rand) {
	candidates := perimeterPoints(room)
	if len(candidates) == 0 {
		return // Ужатая комната без пригодного периметра
	}

	doorCount := 1 + rng.Intn(2)
	for i := 0; i < doorCount; i++ {
		p := candidates[rng.Intn(len(candidates))]
		t, ok := w.GetTile(p)
		if !ok || t.Type != domain.TileWall {
			continue
		}
		w.SetTile(p, domain.NewDoorTile())
	}
}

// perimeterPoints возвращает точки границы комнаты без углов.
func perimeterPoints(room Room) []domain.Position {
	var points []domain.Position
	for x := room.X + 1; x < room.X+room.W-1; x++ {
		points = append(points,
			domain.Position{X: x, Y: room.Y},
			domain.Position{X: x, Y: room.Y + room.H - 1},
		)
	}
	for y := room.Y + 1; y < room.Y+room.H-1; y++ {
		points = append(points,
			domain.Position{X: room.X, Y: y},
			domain.Position{X: room.X + room.W - 1, Y: y},
		)
	}
	return points
}
