package domain

// TileType определяет категорию клетки карты.
type TileType string

const (
	TileFloor      TileType = "FLOOR"
	TileWall       TileType = "WALL"
	TileDoor       TileType = "DOOR"
	TileLockedDoor TileType = "LOCKED_DOOR"
	TileSecretDoor TileType = "SECRET_DOOR"
	TileStairs     TileType = "STAIRS"
	TilePit        TileType = "PIT"
	TileWater      TileType = "WATER"
	TileChest      TileType = "CHEST"
)

// Tile - одна клетка карты.
// Blocking запрещает движение, Opaque блокирует взгляд.
// Discovered - "туман войны": клетка уже была увидена игроком.
type Tile struct {
	Type       TileType `json:"type"`
	Blocking   bool     `json:"blocking"`
	Opaque     bool     `json:"opaque"`
	Discovered bool     `json:"discovered"`
}

// NewWallTile возвращает глухую стену (непроходима, непрозрачна).
func NewWallTile() Tile {
	return Tile{Type: TileWall, Blocking: true, Opaque: true}
}

// NewFloorTile возвращает проходимый пол.
func NewFloorTile() Tile {
	return Tile{Type: TileFloor}
}

// NewDoorTile возвращает открытую дверь (проходима, взгляд не блокирует).
func NewDoorTile() Tile {
	return Tile{Type: TileDoor}
}

// Lighting - режим освещения уровня. Влияет только на сцену (рендер), не на FOV.
type Lighting string

const (
	LightingBright Lighting = "BRIGHT"
	LightingDim    Lighting = "DIM"
	LightingDark   Lighting = "DARK"
)

// ViewState - точка зрения игрока: позиция и направление взгляда.
type ViewState struct {
	Pos    Position  `json:"pos"`
	Facing Direction `json:"facing"`
}

// World - корень владения всем изменяемым пространственным состоянием:
// клетки, реестр сущностей, точка зрения игрока, время и освещение.
// Все мутации идут через методы World; внешний игровой цикл
// сериализует вызовы (внутренние структуры не рассчитаны на конкурентную запись).
type World struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Level  int `json:"level"`

	// Tiles: packed-индекс (Y*Width+X) -> клетка.
	// Отсутствие записи означает "несгенерированное пространство":
	// такие клетки считаются непроходимыми и непрозрачными (см. IsTileBlocking).
	Tiles map[int]Tile `json:"-"`

	// Entities: ID -> сущность
	Entities map[string]*Entity `json:"-"`

	Player      ViewState `json:"player"`
	TimeMinutes int       `json:"timeMinutes"`
	Lighting    Lighting  `json:"lighting"`
}

// NewWorld создает пустой мир заданных размеров.
// Клетки появляются только после применения сгенерированного подземелья.
func NewWorld(width, height, level int) *World {
	return &World{
		Width:    width,
		Height:   height,
		Level:    level,
		Tiles:    make(map[int]Tile, width*height),
		Entities: make(map[string]*Entity),
		Lighting: LightingDim,
	}
}

// GetIndex возвращает packed-индекс клетки. Валиден только для координат в границах.
func (w *World) GetIndex(x, y int) int {
	return y*w.Width + x
}

// InBounds проверяет, лежит ли позиция внутри объявленных границ мира.
func (w *World) InBounds(p Position) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}
