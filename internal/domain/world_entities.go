package domain

// AddEntity добавляет сущность в реестр. Существующая запись с тем же ID
// перезаписывается.
func (w *World) AddEntity(e *Entity) {
	if w.Entities == nil {
		w.Entities = make(map[string]*Entity)
	}
	w.Entities[e.ID] = e
}

// RemoveEntity удаляет сущность из реестра. Для неизвестного ID - no-op
// (семантика "нечего делать", а не ошибка).
func (w *World) RemoveEntity(id string) {
	delete(w.Entities, id)
}

// GetEntity ищет сущность по ID. nil, если не найдена.
func (w *World) GetEntity(id string) *Entity {
	return w.Entities[id]
}

// GetEntitiesAt возвращает все сущности в клетке.
// Линейный скан по реестру: сущностей на уровне десятки, индекс не окупается.
func (w *World) GetEntitiesAt(p Position) []*Entity {
	var result []*Entity
	for _, e := range w.Entities {
		if e.Pos == p {
			result = append(result, e)
		}
	}
	return result
}

// MoveEntity переносит сущность. Возвращает false без мутаций,
// если сущность не найдена или целевая клетка непроходима.
func (w *World) MoveEntity(id string, p Position) bool {
	e, ok := w.Entities[id]
	if !ok {
		return false
	}
	if w.IsTileBlocking(p) {
		return false
	}
	e.Pos = p
	return true
}
