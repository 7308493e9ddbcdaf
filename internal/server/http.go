package server

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling
	"sync"

	"sprite-server/internal/engine"
	"sprite-server/internal/infrastructure/storage"
	"sprite-server/internal/network"
	"sprite-server/internal/version"
	"sprite-server/pkg/api"
	"sprite-server/pkg/logger"
)

// Server держит единственную игру и раздает ее по WebSocket.
// Ядро однопоточное, поэтому все обращения к Game идут через mu.
type Server struct {
	Game *engine.Game
	Hub  *network.Broadcaster
	Port string

	httpSrv *http.Server
	mu      sync.Mutex
}

func New(game *engine.Game, port string) *Server {
	return &Server{
		Game: game,
		Hub:  network.NewBroadcaster(),
		Port: port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s)
	debugHandler.RegisterRoutes(mux)

	s.httpSrv = &http.Server{Addr: ":" + s.Port, Handler: mux}

	logger.Log.Infof("🗺️  Sprite Server running on :%s", s.Port)
	return s.httpSrv.ListenAndServe()
}

// Shutdown останавливает прием новых подключений.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// SaveUnderLock сохраняет игру под тем же локом, что и dispatch.
// Живые websocket-сессии могут мутировать мир и во время остановки сервера,
// поэтому автосейв обязан встать в ту же очередь, а не читать мир напрямую.
func (s *Server) SaveUnderLock(store *storage.SaveStore, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Save(store, slot)
}

// dispatch сериализует команду через ядро и рассылает результат.
// Ответ на команду уходит автору, UPDATE дублируется зрителям.
func (s *Server) dispatch(sessionID string, cmd api.ClientCommand) {
	s.mu.Lock()
	resp := s.Game.ProcessCommand(cmd)
	s.mu.Unlock()

	s.Hub.SendTo(sessionID, resp)
	if resp.Type == "UPDATE" {
		s.Hub.Broadcast(resp)
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
