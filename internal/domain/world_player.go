package domain

// MovePlayer пытается сдвинуть игрока на одну клетку.
// Возвращает false без мутаций, если целевая клетка непроходима или занята
// монстром: отказ по монстру - сигнал внешнему движку начать энкаунтер,
// а не шагнуть в клетку. При успехе целевая клетка помечается увиденной.
func (w *World) MovePlayer(dir Direction) bool {
	dx, dy := dir.Delta()
	target := w.Player.Pos.Shift(dx, dy)

	if w.IsTileBlocking(target) {
		return false
	}

	for _, e := range w.GetEntitiesAt(target) {
		if e.IsMonster() {
			return false
		}
	}

	w.Player.Pos = target
	w.MarkTileDiscovered(target)
	return true
}

// RotatePlayer поворачивает взгляд игрока на 90 градусов.
func (w *World) RotatePlayer(clockwise bool) {
	w.Player.Facing = w.Player.Facing.Rotated(clockwise)
}

// AdvanceTime продвигает игровое время.
func (w *World) AdvanceTime(minutes int) {
	w.TimeMinutes += minutes
}

// GetTimeOfDay возвращает грубую фазу суток по игровому времени.
// Границы фаз: [5,8) рассвет, [8,18) день, [18,21) сумерки, остальное - ночь.
func (w *World) GetTimeOfDay() string {
	hour := (w.TimeMinutes / 60) % 24
	if hour < 0 {
		hour += 24
	}
	switch {
	case hour >= 5 && hour < 8:
		return TimeOfDayDawn
	case hour >= 8 && hour < 18:
		return TimeOfDayDay
	case hour >= 18 && hour < 21:
		return TimeOfDayDusk
	default:
		return TimeOfDayNight
	}
}
