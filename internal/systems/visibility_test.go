package systems

import (
	"testing"

	"sprite-server/internal/domain"
)

// buildOpenWorld делает мир 21x21 из пола со стенами по периметру.
func buildOpenWorld(t *testing.T) *domain.World {
	t.Helper()

	w := domain.NewWorld(21, 21, 1)
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			p := domain.Position{X: x, Y: y}
			if x == 0 || y == 0 || x == 20 || y == 20 {
				w.SetTile(p, domain.NewWallTile())
			} else {
				w.SetTile(p, domain.NewFloorTile())
			}
		}
	}
	w.Player.Pos = domain.Position{X: 10, Y: 10}
	return w
}

func TestVisibleTilesRadius(t *testing.T) {
	w := buildOpenWorld(t)

	visible := VisibleTiles(w, 3)

	// Собственная клетка видна
	if !visible[w.GetIndex(10, 10)] {
		t.Error("Expected player tile to be visible")
	}
	// Клетка на границе радиуса видна
	if !visible[w.GetIndex(13, 10)] {
		t.Error("Expected tile at radius edge to be visible")
	}
	// Сразу за радиусом - нет
	if visible[w.GetIndex(14, 10)] {
		t.Error("Expected tile beyond radius to be hidden")
	}
	// Диагональ считается по евклидову расстоянию: (3,3) дальше радиуса 3
	if visible[w.GetIndex(13, 13)] {
		t.Error("Expected diagonal corner beyond euclidean radius to be hidden")
	}
	if !visible[w.GetIndex(12, 12)] {
		t.Error("Expected diagonal within euclidean radius to be visible")
	}
}

func TestVisibleTilesBlockedByWall(t *testing.T) {
	w := buildOpenWorld(t)

	// Вертикальная стена в двух клетках восточнее игрока
	for y := 8; y <= 12; y++ {
		w.SetTile(domain.Position{X: 12, Y: y}, domain.NewWallTile())
	}

	visible := VisibleTiles(w, 5)

	// Сама стена обрывает линию на себе: клетка стены не видна
	if visible[w.GetIndex(12, 10)] {
		t.Error("Expected opaque wall tile to be hidden")
	}
	// Клетка за стеной тем более не видна
	if visible[w.GetIndex(13, 10)] {
		t.Error("Expected tile behind wall to be hidden")
	}
	// Запад остается открытым
	if !visible[w.GetIndex(7, 10)] {
		t.Error("Expected open west side to be visible")
	}
}

func TestVisibleTilesMarksDiscovered(t *testing.T) {
	w := buildOpenWorld(t)

	visible := VisibleTiles(w, 2)

	for idx := range visible {
		if !visible[idx] {
			continue
		}
		tile, ok := w.GetTile(domain.Position{X: idx % w.Width, Y: idx / w.Width})
		if !ok {
			t.Fatalf("Visible index %d has no tile", idx)
		}
		if !tile.Discovered {
			t.Errorf("Expected visible tile %d to be discovered", idx)
		}
	}

	// Невидимая клетка осталась неоткрытой
	tile, _ := w.GetTile(domain.Position{X: 1, Y: 1})
	if tile.Discovered {
		t.Error("Expected far tile to stay undiscovered")
	}
}

func TestVisibleEntities(t *testing.T) {
	w := buildOpenWorld(t)

	w.AddEntity(&domain.Entity{
		ID: "near", Type: domain.EntityTypeMonster, Name: "Гоблин",
		Pos: domain.Position{X: 12, Y: 10},
	})
	w.AddEntity(&domain.Entity{
		ID: "far", Type: domain.EntityTypeMonster, Name: "Орк",
		Pos: domain.Position{X: 19, Y: 19},
	})

	visible := VisibleTiles(w, 4)
	ents := VisibleEntities(w, visible)

	if len(ents) != 1 || ents[0].ID != "near" {
		t.Fatalf("Expected only the near entity, got %v", ents)
	}
}
