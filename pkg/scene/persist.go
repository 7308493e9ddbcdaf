package scene

import (
	"encoding/json"
	"fmt"
	"sort"
)

// cacheSnapshot - сериализуемая форма кэша.
// Записи хранятся списком: порядок доступа восстанавливается по LastAccess.
type cacheSnapshot struct {
	MaxSize int      `json:"maxSize"`
	Clock   int64    `json:"clock"`
	Entries []*Entry `json:"entries"`
}

// ToJSON экспортирует полное состояние кэша.
// Гарантия: FromJSON(ToJSON()) восстанавливает каждую запись поле в поле.
func (c *Cache) ToJSON() ([]byte, error) {
	snap := cacheSnapshot{
		MaxSize: c.maxSize,
		Clock:   c.clock,
		Entries: make([]*Entry, 0, c.order.Len()),
	}
	for el := c.order.Front(); el != nil; el = el.Next() {
		snap.Entries = append(snap.Entries, el.Value.(*Entry))
	}
	return json.Marshal(snap)
}

// FromJSON восстанавливает кэш из экспорта, полностью замещая текущее
// состояние. Битые или структурно невалидные данные отклоняются целиком -
// частично заполненный кэш хуже пустого.
func (c *Cache) FromJSON(data []byte) error {
	var snap cacheSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("scene: cache deserialization failed: %w", err)
	}

	if snap.MaxSize < 1 {
		return fmt.Errorf("scene: invalid cache snapshot: maxSize %d", snap.MaxSize)
	}
	if len(snap.Entries) > snap.MaxSize {
		return fmt.Errorf("scene: invalid cache snapshot: %d entries exceed capacity %d",
			len(snap.Entries), snap.MaxSize)
	}

	seen := make(map[string]bool, len(snap.Entries))
	for _, e := range snap.Entries {
		if e == nil || e.Hash == "" {
			return fmt.Errorf("scene: invalid cache snapshot: entry without hash")
		}
		if seen[e.Hash] {
			return fmt.Errorf("scene: invalid cache snapshot: duplicate hash %s", e.Hash)
		}
		seen[e.Hash] = true
	}

	// Восстанавливаем порядок доступа по меткам (старые в голове списка).
	sort.Slice(snap.Entries, func(i, j int) bool {
		return snap.Entries[i].LastAccess < snap.Entries[j].LastAccess
	})

	restored := NewCache(snap.MaxSize)
	restored.clock = snap.Clock
	for _, e := range snap.Entries {
		restored.entries[e.Hash] = restored.order.PushBack(e)
		if e.LastAccess > restored.clock {
			restored.clock = e.LastAccess
		}
	}

	*c = *restored
	return nil
}
