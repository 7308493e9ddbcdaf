package domain

// GetTile возвращает клетку по позиции. ok == false, если клетка не сгенерирована
// или позиция вне границ мира.
func (w *World) GetTile(p Position) (Tile, bool) {
	if !w.InBounds(p) {
		return Tile{}, false
	}
	t, ok := w.Tiles[w.GetIndex(p.X, p.Y)]
	return t, ok
}

// SetTile пишет клетку напрямую. Запись вне границ игнорируется.
func (w *World) SetTile(p Position, t Tile) {
	if !w.InBounds(p) {
		return
	}
	w.Tiles[w.GetIndex(p.X, p.Y)] = t
}

// IsTileBlocking возвращает true, если клетка непроходима.
// Отсутствующая клетка всегда считается непроходимой (fail-safe default):
// несгенерированное пространство непроходимо, и вызывающим не нужны nil-проверки.
func (w *World) IsTileBlocking(p Position) bool {
	t, ok := w.GetTile(p)
	if !ok {
		return true
	}
	return t.Blocking
}

// IsTileOpaque возвращает true, если клетка блокирует взгляд.
// Отсутствующая клетка непрозрачна по тем же причинам, что и в IsTileBlocking.
func (w *World) IsTileOpaque(p Position) bool {
	t, ok := w.GetTile(p)
	if !ok {
		return true
	}
	return t.Opaque
}

// MarkTileDiscovered помечает клетку увиденной. Идемпотентна;
// для несуществующей клетки - no-op.
func (w *World) MarkTileDiscovered(p Position) {
	t, ok := w.GetTile(p)
	if !ok || t.Discovered {
		return
	}
	t.Discovered = true
	w.Tiles[w.GetIndex(p.X, p.Y)] = t
}
