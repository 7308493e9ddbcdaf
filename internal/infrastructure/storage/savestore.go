package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"sprite-server/internal/domain"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketWorlds = []byte("worlds")
	bucketScenes = []byte("scenes")
)

// SaveStore хранит слоты сохранений в одном bbolt-файле.
// Два бакета: worlds - снимки мира (JSON), scenes - экспорт кэша сцен.
// Ключ в обоих бакетах - имя слота.
type SaveStore struct {
	db *bolt.DB
}

func Open(path string) (*SaveStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketWorlds); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketScenes)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init buckets: %w", err)
	}

	return &SaveStore{db: db}, nil
}

func (s *SaveStore) Close() error {
	return s.db.Close()
}

// SaveGame пишет слот атомарно: мир и кэш сцен в одной транзакции.
func (s *SaveStore) SaveGame(slot string, state *domain.WorldState, cacheJSON []byte) error {
	if slot == "" {
		return fmt.Errorf("storage: empty slot name")
	}

	worldJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: marshal world: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketWorlds).Put([]byte(slot), worldJSON); err != nil {
			return err
		}
		return tx.Bucket(bucketScenes).Put([]byte(slot), cacheJSON)
	})
	if err != nil {
		return fmt.Errorf("storage: save slot %q: %w", slot, err)
	}
	return nil
}

// LoadGame читает слот. Отсутствующий слот - ошибка, отсутствующий кэш - нет
// (старые сохранения могли писаться без него).
func (s *SaveStore) LoadGame(slot string) (*domain.WorldState, []byte, error) {
	var worldJSON, cacheJSON []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketWorlds).Get([]byte(slot))
		if v == nil {
			return fmt.Errorf("slot %q not found", slot)
		}
		worldJSON = append([]byte(nil), v...)

		if c := tx.Bucket(bucketScenes).Get([]byte(slot)); c != nil {
			cacheJSON = append([]byte(nil), c...)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("storage: load: %w", err)
	}

	var state domain.WorldState
	if err := json.Unmarshal(worldJSON, &state); err != nil {
		return nil, nil, fmt.Errorf("storage: unmarshal world: %w", err)
	}
	return &state, cacheJSON, nil
}

// Slots возвращает имена всех сохраненных слотов.
func (s *SaveStore) Slots() ([]string, error) {
	var slots []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWorlds).ForEach(func(k, _ []byte) error {
			slots = append(slots, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list slots: %w", err)
	}
	return slots, nil
}
