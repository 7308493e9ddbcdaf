package engine

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"sprite-server/internal/infrastructure/storage"
	"sprite-server/pkg/api"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	g, err := NewGame(Config{Seed: 42}, PlaceholderRenderer{})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func TestNewGameWorldSetup(t *testing.T) {
	g := newTestGame(t)

	if g.World.Width != MapWidth || g.World.Height != MapHeight {
		t.Errorf("World size %dx%d, want %dx%d", g.World.Width, g.World.Height, MapWidth, MapHeight)
	}
	if len(g.World.Tiles) != MapWidth*MapHeight {
		t.Errorf("Expected full tile coverage, got %d tiles", len(g.World.Tiles))
	}
	if g.World.IsTileBlocking(g.World.Player.Pos) {
		t.Error("Player must start on a walkable tile")
	}
	if len(g.World.Entities) == 0 {
		t.Error("Expected populated world")
	}
	if g.Cache.Len() != 0 {
		t.Error("Expected empty scene cache on a fresh game")
	}
}

func TestNewGameDeterministicLayout(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	if len(a.Dungeon.Rooms) != len(b.Dungeon.Rooms) {
		t.Fatalf("Room counts differ: %d vs %d", len(a.Dungeon.Rooms), len(b.Dungeon.Rooms))
	}
	for i := range a.Dungeon.Rooms {
		if a.Dungeon.Rooms[i] != b.Dungeon.Rooms[i] {
			t.Errorf("Room %d differs between identically seeded games", i)
		}
	}
}

func TestProcessCommandInit(t *testing.T) {
	g := newTestGame(t)

	resp := g.ProcessCommand(api.ClientCommand{Action: "INIT"})

	if resp.Type != "INIT" {
		t.Errorf("Type = %s, want INIT", resp.Type)
	}
	if resp.Grid == nil || resp.Grid.Width != MapWidth {
		t.Error("Expected grid metadata")
	}
	if resp.Player == nil {
		t.Fatal("Expected player view")
	}
	if len(resp.Map) == 0 {
		t.Error("Expected discovered tiles in the snapshot")
	}
	if resp.Scene == nil || resp.Scene.Hash == "" {
		t.Fatal("Expected scene view with a hash")
	}
	if resp.Scene.Cached {
		t.Error("First render must not come from cache")
	}
	if !strings.HasPrefix(resp.Scene.Artifact, "placeholder:") {
		t.Errorf("Artifact = %q", resp.Scene.Artifact)
	}
	if len(resp.Logs) == 0 {
		t.Error("Expected intro log line")
	}
}

func TestProcessCommandSceneCacheHit(t *testing.T) {
	g := newTestGame(t)

	first := g.ProcessCommand(api.ClientCommand{Action: "INIT"})
	second := g.ProcessCommand(api.ClientCommand{Action: "INIT"})

	if second.Scene.Hash != first.Scene.Hash {
		t.Fatal("Identical scenes must hash equally")
	}
	if !second.Scene.Cached {
		t.Error("Expected second identical scene to come from cache")
	}
	if second.Scene.Artifact != first.Scene.Artifact {
		t.Error("Cached artifact must match the original")
	}
}

func TestProcessCommandRotateChangesScene(t *testing.T) {
	g := newTestGame(t)

	before := g.ProcessCommand(api.ClientCommand{Action: "INIT"})

	payload, _ := json.Marshal(api.RotatePayload{Clockwise: true})
	after := g.ProcessCommand(api.ClientCommand{Action: "ROTATE", Payload: payload})

	if after.Player.Facing == before.Player.Facing {
		t.Error("Expected facing to change")
	}
	if after.Scene.Hash == before.Scene.Hash {
		t.Error("Expected different scene hash after rotation")
	}

	// Поворот обратно возвращает уже отрисованную сцену
	payload, _ = json.Marshal(api.RotatePayload{Clockwise: false})
	restored := g.ProcessCommand(api.ClientCommand{Action: "ROTATE", Payload: payload})

	if restored.Scene.Hash != before.Scene.Hash {
		t.Error("Expected original scene hash after rotating back")
	}
	if !restored.Scene.Cached {
		t.Error("Expected cache hit for a previously rendered scene")
	}
}

func TestProcessCommandWait(t *testing.T) {
	g := newTestGame(t)

	before := g.World.TimeMinutes
	g.ProcessCommand(api.ClientCommand{Action: "WAIT"})

	if g.World.TimeMinutes != before+10 {
		t.Errorf("Expected time to advance by 10, got %d", g.World.TimeMinutes-before)
	}
}

func TestProcessCommandMove(t *testing.T) {
	g := newTestGame(t)
	start := g.World.Player.Pos

	// Пробуем все четыре направления: хотя бы одно из стартовой комнаты открыто
	moved := false
	for _, dir := range []string{"NORTH", "EAST", "SOUTH", "WEST"} {
		payload, _ := json.Marshal(api.MovePayload{Direction: dir})
		g.ProcessCommand(api.ClientCommand{Action: "MOVE", Payload: payload})
		if g.World.Player.Pos != start {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("Expected at least one open direction from the start room")
	}
	if g.World.TimeMinutes == 0 {
		t.Error("Expected successful move to cost time")
	}
}

func TestProcessCommandErrors(t *testing.T) {
	g := newTestGame(t)

	tests := []struct {
		name string
		cmd  api.ClientCommand
	}{
		{"unknown action", api.ClientCommand{Action: "FLY"}},
		{"broken move payload", api.ClientCommand{Action: "MOVE", Payload: []byte(`{{`)}},
		{"unknown direction", api.ClientCommand{Action: "MOVE", Payload: []byte(`{"direction":"UP"}`)}},
		{"broken rotate payload", api.ClientCommand{Action: "ROTATE", Payload: []byte(`{{`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := g.ProcessCommand(tt.cmd)

			found := false
			for _, l := range resp.Logs {
				if l.Type == "ERROR" {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected ERROR log, got %v", resp.Logs)
			}
		})
	}
}

func TestGameSaveLoad(t *testing.T) {
	g := newTestGame(t)
	g.ProcessCommand(api.ClientCommand{Action: "INIT"})
	g.ProcessCommand(api.ClientCommand{Action: "WAIT"})

	store, err := storage.Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if err := g.Save(store, "slot1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	savedTime := g.World.TimeMinutes
	savedHash := g.ProcessCommand(api.ClientCommand{Action: "INIT"}).Scene.Hash

	// Портим состояние и восстанавливаемся
	g.World.TimeMinutes += 500
	g.Cache.Clear()

	if err := g.Load(store, "slot1"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.World.TimeMinutes != savedTime {
		t.Errorf("TimeMinutes = %d, want %d", g.World.TimeMinutes, savedTime)
	}
	if g.Cache.Len() == 0 {
		t.Error("Expected scene cache to be restored")
	}

	// Восстановленная сцена попадает в кэш без повторного рендера
	resp := g.ProcessCommand(api.ClientCommand{Action: "INIT"})
	if resp.Scene.Hash != savedHash {
		t.Errorf("Scene hash changed after load: %s vs %s", resp.Scene.Hash, savedHash)
	}
	if !resp.Scene.Cached {
		t.Error("Expected cache hit after restoring the cache")
	}
}

func TestLoadMissingSlotKeepsState(t *testing.T) {
	g := newTestGame(t)

	store, err := storage.Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	world := g.World
	if err := g.Load(store, "ghost"); err == nil {
		t.Fatal("Expected error for missing slot")
	}
	if g.World != world {
		t.Error("Failed load must not replace the world")
	}
}
