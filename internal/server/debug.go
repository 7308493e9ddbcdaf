package server

import (
	"encoding/json"
	"net/http"

	"sprite-server/internal/domain"
)

// DebugHandler предоставляет доступ к внутреннему состоянию игры
type DebugHandler struct {
	Server *Server
}

func NewDebugHandler(s *Server) *DebugHandler {
	return &DebugHandler{Server: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleWorldSummary)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/cache", h.handleSceneCache)
}

// /debug/world - сводка по миру: размеры, время, число сущностей
func (h *DebugHandler) handleWorldSummary(w http.ResponseWriter, r *http.Request) {
	type WorldSummary struct {
		Level       int    `json:"level"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		EntityCount int    `json:"entityCount"`
		TimeMinutes int    `json:"timeMinutes"`
		TimeOfDay   string `json:"timeOfDay"`
		Subscribers int    `json:"subscribers"`
	}

	h.Server.mu.Lock()
	world := h.Server.Game.World
	summary := WorldSummary{
		Level:       world.Level,
		Width:       world.Width,
		Height:      world.Height,
		EntityCount: len(world.Entities),
		TimeMinutes: world.TimeMinutes,
		TimeOfDay:   world.GetTimeOfDay(),
		Subscribers: h.Server.Hub.SubscriberCount(),
	}
	h.Server.mu.Unlock()

	writeJSON(w, summary)
}

// /debug/entities - дамп всех сущностей (включая скрытые компоненты)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	h.Server.mu.Lock()
	dump := make([]*domain.Entity, 0, len(h.Server.Game.World.Entities))
	for _, e := range h.Server.Game.World.Entities {
		dump = append(dump, e.Clone())
	}
	h.Server.mu.Unlock()

	writeJSON(w, dump)
}

// /debug/cache - состояние кэша сцен
func (h *DebugHandler) handleSceneCache(w http.ResponseWriter, r *http.Request) {
	h.Server.mu.Lock()
	data, err := h.Server.Game.Cache.ToJSON()
	h.Server.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	// Пустые срезы отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
