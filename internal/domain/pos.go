package domain

// Position - целочисленная координата клетки. Value-type, используется как ключ мап.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// DirectionTo возвращает знаковые шаги (-1/0/1) по осям в сторону другой точки.
// Используется как шаг Брезенхэма.
func (p Position) DirectionTo(other Position) (int, int) {
	sx, sy := 0, 0
	if other.X > p.X {
		sx = 1
	} else if other.X < p.X {
		sx = -1
	}
	if other.Y > p.Y {
		sy = 1
	} else if other.Y < p.Y {
		sy = -1
	}
	return sx, sy
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
