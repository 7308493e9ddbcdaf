package scene

import (
	"container/list"

	"sprite-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Entry - закэшированный результат рендера сцены.
// Живет только внутри кэша: создается при Set, умирает при вытеснении.
type Entry struct {
	Hash     string `json:"hash"`
	Artifact string `json:"artifact"`

	// LastAccess - монотонный счетчик обращений (поколение), не wall-clock:
	// вытесняется запись с наименьшим значением, и равенство меток невозможно.
	LastAccess int64 `json:"lastAccess"`

	// Descriptor - снимок дескриптора, породившего артефакт (для отладки
	// и переиспользования контекста внешним рендером).
	Descriptor Descriptor `json:"descriptor"`
}

// Cache - ограниченный по вместимости content-addressed кэш артефактов сцен.
// Вытеснение - строгий LRU по обращениям: Get освежает запись, Set при
// заполненном кэше удаляет запись с наименьшим LastAccess.
//
// Порядок в intrusive-списке совпадает с порядком LastAccess, поэтому
// вытеснение O(1) при тех же семантиках, что и линейный поиск минимума.
type Cache struct {
	maxSize int
	clock   int64

	entries map[string]*list.Element // hash -> элемент списка (хранит *Entry)
	order   *list.List               // front = давно не использовался, back = свежий
}

// NewCache создает кэш на maxSize записей. maxSize < 1 трактуется как 1.
func NewCache(maxSize int) *Cache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Cache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element, maxSize),
		order:   list.New(),
	}
}

// Len возвращает количество записей.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Has проверяет наличие записи, не освежая ее.
func (c *Cache) Has(hash string) bool {
	_, ok := c.entries[hash]
	return ok
}

// Get возвращает артефакт и освежает метку доступа записи.
func (c *Cache) Get(hash string) (string, bool) {
	el, ok := c.entries[hash]
	if !ok {
		return "", false
	}

	entry := el.Value.(*Entry)
	c.clock++
	entry.LastAccess = c.clock
	c.order.MoveToBack(el)

	return entry.Artifact, true
}

// Set сохраняет артефакт. Если кэш заполнен, предварительно вытесняется
// запись с наименьшей меткой доступа. Повторный Set существующего хеша
// обновляет артефакт и дескриптор, освежая запись.
func (c *Cache) Set(hash, artifact string, d Descriptor) {
	c.clock++

	if el, ok := c.entries[hash]; ok {
		entry := el.Value.(*Entry)
		entry.Artifact = artifact
		entry.Descriptor = d
		entry.LastAccess = c.clock
		c.order.MoveToBack(el)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	entry := &Entry{
		Hash:       hash,
		Artifact:   artifact,
		LastAccess: c.clock,
		Descriptor: d,
	}
	c.entries[hash] = c.order.PushBack(entry)
}

// evictOldest удаляет запись с наименьшей меткой доступа (голова списка).
func (c *Cache) evictOldest() {
	front := c.order.Front()
	if front == nil {
		return
	}
	evicted := front.Value.(*Entry)
	c.order.Remove(front)
	delete(c.entries, evicted.Hash)

	logger.WithComponent("scene_cache").WithFields(logrus.Fields{
		"hash":        evicted.Hash,
		"last_access": evicted.LastAccess,
	}).Debug("Evicted least recently used scene")
}

// Clear удаляет все записи. Счетчик обращений не сбрасывается,
// чтобы метки оставались монотонными в рамках жизни кэша.
func (c *Cache) Clear() {
	c.entries = make(map[string]*list.Element, c.maxSize)
	c.order = list.New()
}
