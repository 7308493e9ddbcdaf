package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"sprite-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Константы генерации
const (
	MaxDepth    = 4
	MinRoomSize = 4
	MaxRoomSize = 10

	// MinMapExtent - минимальный размер карты по каждой оси:
	// одна комната минимального размера плюс стены по краям.
	MinMapExtent = MinRoomSize + 2
)

// Ошибки конфигурации генератора. Проверяются до начала разбиения:
// лучше отказ сразу, чем вырожденная одна-комната-карта.
var (
	ErrInvalidMapSize = errors.New("dungeon: map dimensions must be positive")
	ErrMapTooSmall    = errors.New("dungeon: map too small to fit a room")
)

// Dungeon - неизменяемый результат генерации. Не зависит от мира:
// нанесение на клетки делает ApplyToWorld.
type Dungeon struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Level  int    `json:"level"`
	Rooms  []Room `json:"rooms"`
}

// GenerateDungeon строит уровень: BSP-разбиение полного прямоугольника,
// по комнате на лист. Мир не трогает; единственный побочный эффект -
// потребление rng.
//
// Весь рандом идет через переданный rng: фиксированный сид дает
// воспроизводимую планировку (важно для тестов и реплеев).
func GenerateDungeon(width, height, level int, rng *rand.Rand) (*Dungeon, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidMapSize, width, height)
	}
	if width < MinMapExtent || height < MinMapExtent {
		return nil, fmt.Errorf("%w: got %dx%d, need at least %dx%d",
			ErrMapTooSmall, width, height, MinMapExtent, MinMapExtent)
	}

	tree := buildTree(Rect{X: 0, Y: 0, W: width, H: height}, MaxDepth, MinRoomSize, rng)
	rooms := tree.inscribeRooms(MinRoomSize, MaxRoomSize, rng)

	// Назначение комнат: вход в первой, босс в последней,
	// изредка сокровищница, остальное - обычные залы.
	for i := range rooms {
		rooms[i].ID = fmt.Sprintf("room_%d", i+1)
		switch {
		case i == 0:
			rooms[i].Kind = RoomStart
		case i == len(rooms)-1:
			rooms[i].Kind = RoomBoss
		case rng.Intn(10) == 0:
			rooms[i].Kind = RoomTreasure
		}
	}

	logger.WithComponent("dungeon_generator").WithFields(logrus.Fields{
		"level": level,
		"size":  fmt.Sprintf("%dx%d", width, height),
		"rooms": len(rooms),
	}).Info("Dungeon generated")

	return &Dungeon{
		Width:  width,
		Height: height,
		Level:  level,
		Rooms:  rooms,
	}, nil
}
