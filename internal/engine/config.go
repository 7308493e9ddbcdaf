package engine

import "time"

// Размеры стартового уровня и вместимость кэша сцен.
const (
	MapWidth   = 50
	MapHeight  = 50
	StartLevel = 1

	SceneCacheSize = 32
)

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно: от него зависит планировка уровня и спавн.
	// Один сид - одна и та же карта.
	Seed int64

	// Port - порт HTTP-сервера.
	Port string

	// SavePath - путь к файлу сейвов (bbolt).
	SavePath string
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:     time.Now().UnixNano(),
		Port:     "8080",
		SavePath: "sprite.db",
	}
}
