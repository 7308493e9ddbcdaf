package api

import "encoding/json"

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту:
// полный "снимок" видимого игроку мира после обработки команды.
type ServerResponse struct {
	// Type тип сообщения: "INIT" для первого снимка, дальше "UPDATE".
	Type string `json:"type"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех исследованных тайлов (туман войны).
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Player текущая точка зрения игрока.
	Player *PlayerView `json:"player,omitempty"`

	// Scene результат обращения к кэшу сцен: отпечаток и артефакт рендера.
	Scene *SceneView `json:"scene,omitempty"`

	// TimeOfDay и Lighting - условия среды для клиентской отрисовки.
	TimeOfDay string `json:"timeOfDay,omitempty"`
	Lighting  string `json:"lighting,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Type категория тайла (FLOOR, WALL, DOOR, ...).
	Type string `json:"type"`

	// Blocking true, если тайл непроходим.
	Blocking bool `json:"blocking"`

	// IsVisible true, если тайл в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsDiscovered true, если тайл когда-либо был увиден.
	// Если IsVisible=false, а IsDiscovered=true, рендерится тускло.
	IsDiscovered bool `json:"isDiscovered"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // MONSTER, NPC, ITEM
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// PlayerView - позиция и направление взгляда игрока.
type PlayerView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Facing string `json:"facing"`
}

// SceneView - результат обращения к кэшу сцен для текущего момента.
type SceneView struct {
	Hash string `json:"hash"`

	// Artifact - непрозрачная ссылка на артефакт рендера (URL, data-URI,
	// идентификатор провайдера). Ядро его не интерпретирует.
	Artifact string `json:"artifact"`

	// Cached true, если артефакт взят из кэша, а не отрисован заново.
	Cached bool `json:"cached"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, ERROR
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: INIT, MOVE, ROTATE, WAIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// MovePayload используется для действия MOVE.
type MovePayload struct {
	Direction string `json:"direction"` // NORTH, EAST, SOUTH, WEST
}

// RotatePayload используется для действия ROTATE.
type RotatePayload struct {
	Clockwise bool `json:"clockwise"`
}
