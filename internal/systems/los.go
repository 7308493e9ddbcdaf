package systems

import (
	"sprite-server/internal/domain"
)

// OpacityFunc сообщает, блокирует ли клетка взгляд.
type OpacityFunc func(domain.Position) bool

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Целочисленный алгоритм Брезенхэма, без аллокаций, O(max(|dx|,|dy|)).
//
// Клетка блокирует взгляд, если isOpaque вернула true и клетка не является
// стартовой: старт исключен (наблюдатель видит из своей клетки), конечная
// точка включена. Для совпадающих точек всегда true.
//
// Чистая функция: никаких побочных эффектов, пометка исследованных клеток -
// забота вызывающего.
func HasLineOfSight(from, to domain.Position, isOpaque OpacityFunc) bool {
	if from == to {
		return true
	}

	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := from.DirectionTo(to)

	err := dx - dy

	for {
		// Проверяем препятствия, исключая только стартовую точку.
		if (x0 != from.X || y0 != from.Y) && isOpaque(domain.Position{X: x0, Y: y0}) {
			return false
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
