package domain

import (
	"encoding/json"
	"fmt"
)

// Direction - направление взгляда игрока.
// Порядок значений задает цикл поворота по часовой стрелке: N -> E -> S -> W.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [4]string{"NORTH", "EAST", "SOUTH", "WEST"}

// directionDeltas: смещение на одну клетку. Y растет вниз, поэтому север = -1.
var directionDeltas = [4][2]int{
	{0, -1}, // North
	{1, 0},  // East
	{0, 1},  // South
	{-1, 0}, // West
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// Delta возвращает смещение (dx, dy) на одну клетку в этом направлении.
func (d Direction) Delta() (int, int) {
	dd := directionDeltas[d%4]
	return dd[0], dd[1]
}

// Rotated возвращает направление после поворота на 90 градусов.
func (d Direction) Rotated(clockwise bool) Direction {
	if clockwise {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// ParseDirection разбирает строковое имя направления (протокол клиента, сейвы).
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("unknown direction: %q", s)
}

// MarshalJSON сериализует направление строкой, чтобы сейвы и протокол
// оставались человекочитаемыми и стабильными при изменении числовых значений.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON принимает строковое представление.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
