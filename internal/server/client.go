package server

import (
	"net/http"
	"time"

	"sprite-server/pkg/api"
	"sprite-server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и игровым ядром
type Client struct {
	Server    *Server
	Conn      *websocket.Conn
	Send      chan *api.ServerResponse
	SessionID string

	// done закрывается при выходе writePump: форвардер из Hub не должен
	// вечно висеть на отправке в Send, когда писателя уже нет.
	done chan struct{}
}

func NewClient(s *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server:    s,
		Conn:      conn,
		Send:      make(chan *api.ServerResponse, 256),
		SessionID: ulid.Make().String(),
		done:      make(chan struct{}),
	}
}

// forwardUpdates пересылает сообщения из личного канала Hub в writePump.
// Если писатель умер, остаток updates молча выбрасывается - цикл обязан
// дожить до закрытия updates (Unregister), иначе горутина утечет.
func (c *Client) forwardUpdates(updates chan *api.ServerResponse) {
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
		}
	}
	close(c.Send)
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Server.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("session_id", c.SessionID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// ПОДПИСКА НА ОБНОВЛЕНИЯ
	updates := c.Server.Hub.Register(c.SessionID)
	go c.forwardUpdates(updates)

	logger.Log.WithField("session_id", c.SessionID).Info("Client connected")

	// Триггер первой отрисовки
	c.Server.dispatch(c.SessionID, api.ClientCommand{Action: "INIT"})

	// ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.Server.dispatch(c.SessionID, cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
