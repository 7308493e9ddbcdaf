package domain

import "fmt"

// TileRecord - пара "packed-индекс + клетка" для сериализации.
// Список пар не зависит от порядка обхода мапы: восстановление
// дает тот же мир при любой перестановке записей.
type TileRecord struct {
	Index int  `json:"index"`
	Tile  Tile `json:"tile"`
}

// WorldState - полный снимок мира для сейвов. Содержит копии,
// не ссылается на живые структуры World.
type WorldState struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Level       int          `json:"level"`
	Tiles       []TileRecord `json:"tiles"`
	Entities    []*Entity    `json:"entities"`
	Player      ViewState    `json:"player"`
	TimeMinutes int          `json:"timeMinutes"`
	Lighting    Lighting     `json:"lighting"`
}

// GetState снимает слепок текущего состояния.
func (w *World) GetState() *WorldState {
	s := &WorldState{
		Width:       w.Width,
		Height:      w.Height,
		Level:       w.Level,
		Tiles:       make([]TileRecord, 0, len(w.Tiles)),
		Entities:    make([]*Entity, 0, len(w.Entities)),
		Player:      w.Player,
		TimeMinutes: w.TimeMinutes,
		Lighting:    w.Lighting,
	}

	for idx, t := range w.Tiles {
		s.Tiles = append(s.Tiles, TileRecord{Index: idx, Tile: t})
	}
	for _, e := range w.Entities {
		s.Entities = append(s.Entities, e.Clone())
	}

	return s
}

// SetState восстанавливает мир из слепка, полностью замещая текущее состояние.
// Невалидный слепок (нулевые размеры, индекс вне границ, сущность без ID)
// отклоняется целиком - мир не меняется.
func (w *World) SetState(s *WorldState) error {
	if s == nil {
		return fmt.Errorf("world state is nil")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid world size %dx%d", s.Width, s.Height)
	}

	tiles := make(map[int]Tile, len(s.Tiles))
	for _, rec := range s.Tiles {
		if rec.Index < 0 || rec.Index >= s.Width*s.Height {
			return fmt.Errorf("tile index %d out of bounds for %dx%d world", rec.Index, s.Width, s.Height)
		}
		tiles[rec.Index] = rec.Tile
	}

	entities := make(map[string]*Entity, len(s.Entities))
	for _, e := range s.Entities {
		if e == nil || e.ID == "" {
			return fmt.Errorf("entity without id in world state")
		}
		entities[e.ID] = e.Clone()
	}

	w.Width = s.Width
	w.Height = s.Height
	w.Level = s.Level
	w.Tiles = tiles
	w.Entities = entities
	w.Player = s.Player
	w.TimeMinutes = s.TimeMinutes
	w.Lighting = s.Lighting
	return nil
}
