package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"sprite-server/internal/domain"
)

// EntityRef - снимок видимой сущности для дескриптора сцены.
type EntityRef struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Name string          `json:"name"`
	Pos  domain.Position `json:"pos"`
}

// Descriptor - снимок "отрисовываемого момента": точка зрения игрока,
// видимые сущности и условия среды. Нарративные поля - непрозрачный
// контекст для внешнего рендера, кэш их не интерпретирует.
type Descriptor struct {
	View      domain.ViewState `json:"view"`
	Entities  []EntityRef      `json:"entities"`
	Lighting  domain.Lighting  `json:"lighting"`
	TimeOfDay string           `json:"timeOfDay"`
	Narrative string           `json:"narrative,omitempty"`
}

// canonicalScene - каноническая форма дескриптора для хеширования:
// только то, что определяет картинку (позиция, взгляд, свет, фаза суток,
// сущности), сущности отсортированы по ID. Нарратив в хеш не входит -
// он контекст, а не содержимое сцены.
type canonicalScene struct {
	Pos       domain.Position `json:"pos"`
	Facing    string          `json:"facing"`
	Lighting  domain.Lighting `json:"lighting"`
	TimeOfDay string          `json:"timeOfDay"`
	Entities  []EntityRef     `json:"entities"`
}

// GenerateHash возвращает детерминированный отпечаток сцены.
// Два дескриптора, отличающиеся только порядком перечисления сущностей,
// дают одинаковый хеш; любое изменение позиции, взгляда, освещения,
// фазы суток или набора/позиций сущностей - другой хеш.
func GenerateHash(d Descriptor) string {
	entities := make([]EntityRef, len(d.Entities))
	copy(entities, d.Entities)
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].ID < entities[j].ID
	})

	canonical := canonicalScene{
		Pos:       d.View.Pos,
		Facing:    d.View.Facing.String(),
		Lighting:  d.Lighting,
		TimeOfDay: d.TimeOfDay,
		Entities:  entities,
	}

	// json.Marshal детерминирован для структур (порядок полей фиксирован),
	// так что digest стабилен между запусками.
	payload, err := json.Marshal(canonical)
	if err != nil {
		// Структура состоит из простых типов, маршалинг не может упасть.
		panic("scene: canonical marshal failed: " + err.Error())
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
