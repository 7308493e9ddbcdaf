package domain

// --- КОМПОНЕНТЫ ---

// RenderComponent - визуализация (клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения (g-гоблин, $-монетка)
	Color  string `json:"color"`
}

// MonsterComponent - характеристики монстра.
// Наличие компонента означает, что клетка с сущностью "занята боем":
// движение игрока в нее отклоняется, а внешний движок начинает энкаунтер.
type MonsterComponent struct {
	HP          int    `json:"hp"`
	MaxHP       int    `json:"maxHp"`
	Strength    int    `json:"strength"`
	Hostile     bool   `json:"hostile"`
	Personality string `json:"personality,omitempty"` // "Cowardly", "Furious" - подсказка для LLM-нарратора
}

// NPCComponent - данные мирного персонажа. Persona уходит внешнему
// LLM-слою как контекст диалога; ядро ее не интерпретирует.
type NPCComponent struct {
	Role    string `json:"role"`
	Persona string `json:"persona,omitempty"`
}

// ItemComponent - предмет на полу.
type ItemComponent struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// --- СУЩНОСТЬ ---

type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos Position `json:"pos"`

	// Полезная нагрузка по типу (если nil - свойство отсутствует)
	Render  *RenderComponent  `json:"render,omitempty"`
	Monster *MonsterComponent `json:"monster,omitempty"`
	NPC     *NPCComponent     `json:"npc,omitempty"`
	Item    *ItemComponent    `json:"item,omitempty"`
}

// IsMonster сообщает, занимает ли сущность клетку "боем".
func (e *Entity) IsMonster() bool {
	return e.Type == EntityTypeMonster
}

// Clone возвращает глубокую копию сущности.
// Используется при снятии слепка состояния мира (сейвы).
func (e *Entity) Clone() *Entity {
	c := *e
	if e.Render != nil {
		r := *e.Render
		c.Render = &r
	}
	if e.Monster != nil {
		m := *e.Monster
		c.Monster = &m
	}
	if e.NPC != nil {
		n := *e.NPC
		c.NPC = &n
	}
	if e.Item != nil {
		i := *e.Item
		c.Item = &i
	}
	return &c
}
