package scene

import (
	"fmt"
	"testing"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(4)

	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss on empty cache")
	}

	c.Set("h1", "art1", Descriptor{})
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}

	got, ok := c.Get("h1")
	if !ok || got != "art1" {
		t.Errorf("Get(h1) = %q, %v", got, ok)
	}

	// Повторный Set обновляет артефакт без роста кэша
	c.Set("h1", "art1v2", Descriptor{})
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry after overwrite, got %d", c.Len())
	}
	if got, _ := c.Get("h1"); got != "art1v2" {
		t.Errorf("Expected updated artifact, got %q", got)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)

	c.Set("a", "A", Descriptor{})
	c.Set("b", "B", Descriptor{})
	c.Set("c", "C", Descriptor{})

	if c.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", c.Len())
	}
	if c.Has("a") {
		t.Error("Expected oldest entry 'a' to be evicted")
	}
	if !c.Has("b") || !c.Has("c") {
		t.Error("Expected 'b' and 'c' to survive")
	}
}

func TestCacheGetRefreshesEntry(t *testing.T) {
	c := NewCache(2)

	c.Set("a", "A", Descriptor{})
	c.Set("b", "B", Descriptor{})

	// Обращение к 'a' делает жертвой вытеснения 'b'
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Expected hit on 'a'")
	}
	c.Set("c", "C", Descriptor{})

	if !c.Has("a") {
		t.Error("Expected refreshed 'a' to survive")
	}
	if c.Has("b") {
		t.Error("Expected stale 'b' to be evicted")
	}
}

func TestCacheHasDoesNotRefresh(t *testing.T) {
	c := NewCache(2)

	c.Set("a", "A", Descriptor{})
	c.Set("b", "B", Descriptor{})

	// Has не считается обращением
	if !c.Has("a") {
		t.Fatal("Expected 'a' present")
	}
	c.Set("c", "C", Descriptor{})

	if c.Has("a") {
		t.Error("Expected 'a' to be evicted despite Has check")
	}
}

func TestCacheMinimalCapacity(t *testing.T) {
	// Вместимость меньше 1 трактуется как 1
	c := NewCache(0)

	c.Set("a", "A", Descriptor{})
	c.Set("b", "B", Descriptor{})

	if c.Len() != 1 {
		t.Errorf("Expected single entry, got %d", c.Len())
	}
	if !c.Has("b") {
		t.Error("Expected newest entry to survive")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(4)
	for i := 0; i < 4; i++ {
		c.Set(fmt.Sprintf("h%d", i), "art", Descriptor{})
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache, got %d entries", c.Len())
	}
	if c.Has("h0") {
		t.Error("Expected no entries after Clear")
	}

	// Кэш пригоден к использованию после очистки
	c.Set("x", "X", Descriptor{})
	if got, ok := c.Get("x"); !ok || got != "X" {
		t.Errorf("Get after Clear = %q, %v", got, ok)
	}
}
