package dungeon

import (
	"math/rand"
	"time"

	"sprite-server/internal/domain"

	"github.com/oklog/ulid/v2"
)

// EntityTemplate определяет шаблон для создания сущности.
// Компоненты-указатели копируются при спавне: шаблон остается неизменным.
type EntityTemplate struct {
	Name    string
	Type    string
	Render  domain.RenderComponent
	Monster *domain.MonsterComponent
	NPC     *domain.NPCComponent
	Item    *domain.ItemComponent
}

// Spawn создает сущность из шаблона на заданной позиции.
// Статы монстров масштабируются по уровню подземелья.
func (t EntityTemplate) Spawn(pos domain.Position, level int, rng *rand.Rand) *domain.Entity {
	e := &domain.Entity{
		ID:   newEntityID(rng),
		Type: t.Type,
		Name: t.Name,
		Pos:  pos,
		Render: &domain.RenderComponent{
			Symbol: t.Render.Symbol,
			Color:  t.Render.Color,
		},
	}

	if t.Monster != nil {
		m := *t.Monster
		m.HP += level * 2
		m.MaxHP = m.HP
		m.Strength += level / 2
		e.Monster = &m
	}
	if t.NPC != nil {
		n := *t.NPC
		e.NPC = &n
	}
	if t.Item != nil {
		i := *t.Item
		e.Item = &i
	}

	return e
}

// newEntityID выдает ULID с энтропией из инжектированного rng.
func newEntityID(rng *rand.Rand) string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rng).String()
}

// --- ВРАГИ ---

var Goblin = EntityTemplate{
	Name: "Хитрый Гоблин",
	Type: domain.EntityTypeMonster,
	Render: domain.RenderComponent{
		Symbol: "g",
		Color:  "#22C55E",
	},
	Monster: &domain.MonsterComponent{
		HP:          15,
		Strength:    2,
		Hostile:     true,
		Personality: "Cowardly",
	},
}

var Orc = EntityTemplate{
	Name: "Свирепый Орк",
	Type: domain.EntityTypeMonster,
	Render: domain.RenderComponent{
		Symbol: "O",
		Color:  "#DC2626",
	},
	Monster: &domain.MonsterComponent{
		HP:          30,
		Strength:    5,
		Hostile:     true,
		Personality: "Furious",
	},
}

// --- NPC ---

var Merchant = EntityTemplate{
	Name: "Странствующий Торговец",
	Type: domain.EntityTypeNPC,
	Render: domain.RenderComponent{
		Symbol: "M",
		Color:  "#FBBF24",
	},
	NPC: &domain.NPCComponent{
		Role:    "merchant",
		Persona: "Хитроватый торговец, говорит с прибаутками и вечно набивает цену.",
	},
}

// --- ПРЕДМЕТЫ ---

var HealthPotion = EntityTemplate{
	Name: "Зелье Лечения",
	Type: domain.EntityTypeItem,
	Render: domain.RenderComponent{
		Symbol: "!",
		Color:  "#EF4444",
	},
	Item: &domain.ItemComponent{
		Category: domain.ItemCategoryPotion,
		Value:    25,
	},
}

var IronSword = EntityTemplate{
	Name: "Железный Меч",
	Type: domain.EntityTypeItem,
	Render: domain.RenderComponent{
		Symbol: "/",
		Color:  "#9CA3AF",
	},
	Item: &domain.ItemComponent{
		Category: domain.ItemCategoryWeapon,
		Value:    50,
	},
}

var Bread = EntityTemplate{
	Name: "Краюха Хлеба",
	Type: domain.EntityTypeItem,
	Render: domain.RenderComponent{
		Symbol: "%",
		Color:  "#D97706",
	},
	Item: &domain.ItemComponent{
		Category: domain.ItemCategoryFood,
		Value:    5,
	},
}
