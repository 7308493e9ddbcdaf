package systems

import (
	"sprite-server/internal/domain"
	"sprite-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// VisibleTiles возвращает множество packed-индексов клеток, видимых игроку.
//
// Сканируется квадрат со стороной 2*radius+1 вокруг игрока; клетка попадает
// в результат, если ее евклидово расстояние до игрока не превышает radius
// и луч Брезенхэма до нее не перекрыт непрозрачной клеткой. Каждая видимая
// клетка помечается исследованной (туман войны).
//
// Стоимость O(radius^3): на каждую из O(radius^2) клеток-кандидатов приходится
// LOS-проход длиной O(radius). Для радиусов порядка 8-10 этого достаточно.
func VisibleTiles(w *domain.World, radius int) map[int]bool {
	visible := make(map[int]bool)
	if radius < 0 {
		return visible
	}

	origin := w.Player.Pos
	radiusSq := radius * radius

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			target := origin.Shift(dx, dy)
			if !w.InBounds(target) {
				continue
			}
			if origin.DistanceSquaredTo(target) > radiusSq {
				continue
			}
			if !HasLineOfSight(origin, target, w.IsTileOpaque) {
				continue
			}

			visible[w.GetIndex(target.X, target.Y)] = true
			w.MarkTileDiscovered(target)
		}
	}

	logger.WithComponent("visibility").WithFields(logrus.Fields{
		"observer_pos":  origin,
		"radius":        radius,
		"visible_tiles": len(visible),
	}).Debug("Visibility scan complete.")

	return visible
}

// VisibleEntities возвращает сущности, стоящие на видимых клетках.
// Используется движком при сборке дескриптора сцены.
func VisibleEntities(w *domain.World, visible map[int]bool) []*domain.Entity {
	var result []*domain.Entity
	for _, e := range w.Entities {
		if !w.InBounds(e.Pos) {
			continue
		}
		if visible[w.GetIndex(e.Pos.X, e.Pos.Y)] {
			result = append(result, e)
		}
	}
	return result
}
