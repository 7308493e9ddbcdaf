package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"sprite-server/internal/domain"
	"sprite-server/internal/infrastructure/storage"
	"sprite-server/internal/systems"
	"sprite-server/pkg/api"
	"sprite-server/pkg/dungeon"
	"sprite-server/pkg/logger"
	"sprite-server/pkg/scene"

	"github.com/sirupsen/logrus"
)

// Game владеет миром, кэшем сцен и рендером. Все вызовы ядра идут через
// ProcessCommand; вызывающий (websocket-сервер) обязан сериализовать их -
// внутри нет своих локов.
type Game struct {
	World    *domain.World
	Dungeon  *dungeon.Dungeon
	Cache    *scene.Cache
	Renderer Renderer

	rng  *rand.Rand
	logs []api.LogEntry
}

// NewGame генерирует стартовый уровень и населяет его.
func NewGame(cfg Config, r Renderer) (*Game, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	d, err := dungeon.GenerateDungeon(MapWidth, MapHeight, StartLevel, rng)
	if err != nil {
		return nil, fmt.Errorf("engine: level generation failed: %w", err)
	}

	w := domain.NewWorld(d.Width, d.Height, d.Level)
	dungeon.ApplyToWorld(d, w, rng)
	populateWorld(d, w, rng)

	logger.WithComponent("engine").WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"level":    d.Level,
		"rooms":    len(d.Rooms),
		"entities": len(w.Entities),
	}).Info("🗺️  World ready")

	return &Game{
		World:    w,
		Dungeon:  d,
		Cache:    scene.NewCache(SceneCacheSize),
		Renderer: r,
		rng:      rng,
	}, nil
}

// ProcessCommand - главный метод обработки ввода.
// Возвращаемый снимок уже содержит результат обращения к кэшу сцен.
func (g *Game) ProcessCommand(cmd api.ClientCommand) *api.ServerResponse {
	g.logs = nil
	respType := "UPDATE"

	switch cmd.Action {
	case "INIT":
		respType = "INIT"
		g.addLog("Вы спускаетесь в подземелье. Где-то капает вода.", "INFO")

	case "MOVE":
		var p api.MovePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			g.addLog("Некорректная команда движения.", "ERROR")
			break
		}
		dir, err := domain.ParseDirection(p.Direction)
		if err != nil {
			g.addLog("Некорректное направление: "+p.Direction, "ERROR")
			break
		}
		g.handleMove(dir)

	case "ROTATE":
		var p api.RotatePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			g.addLog("Некорректная команда поворота.", "ERROR")
			break
		}
		g.World.RotatePlayer(p.Clockwise)

	case "WAIT":
		g.World.AdvanceTime(domain.TimeCostWait)
		g.addLog("Вы пережидаете, прислушиваясь к темноте.", "INFO")

	default:
		g.addLog("Неизвестная команда: "+cmd.Action, "ERROR")
	}

	return g.buildResponse(respType)
}

// handleMove двигает игрока и объясняет отказ: стена или монстр.
// Отказ по монстру - сигнал внешнему движку начать энкаунтер.
func (g *Game) handleMove(dir domain.Direction) {
	if g.World.MovePlayer(dir) {
		g.World.AdvanceTime(domain.TimeCostMove)
		return
	}

	dx, dy := dir.Delta()
	target := g.World.Player.Pos.Shift(dx, dy)
	for _, e := range g.World.GetEntitiesAt(target) {
		if e.IsMonster() {
			g.addLog(fmt.Sprintf("%s преграждает путь!", e.Name), "COMBAT")
			return
		}
	}
	g.addLog("Путь прегражден.", "ERROR")
}

// buildResponse собирает снимок мира для клиента: исследованные тайлы,
// видимые сущности и артефакт сцены.
func (g *Game) buildResponse(respType string) *api.ServerResponse {
	visible := systems.VisibleTiles(g.World, domain.VisionRadius)

	var mapDTO []api.TileView
	for y := 0; y < g.World.Height; y++ {
		for x := 0; x < g.World.Width; x++ {
			p := domain.Position{X: x, Y: y}
			t, ok := g.World.GetTile(p)
			if !ok || !t.Discovered {
				continue
			}
			mapDTO = append(mapDTO, api.TileView{
				X: x, Y: y,
				Type:         string(t.Type),
				Blocking:     t.Blocking,
				IsVisible:    visible[g.World.GetIndex(x, y)],
				IsDiscovered: true,
			})
		}
	}

	var viewEntities []api.EntityView
	for _, e := range systems.VisibleEntities(g.World, visible) {
		ev := api.EntityView{
			ID:   e.ID,
			Type: e.Type,
			Name: e.Name,
		}
		ev.Pos.X, ev.Pos.Y = e.Pos.X, e.Pos.Y
		if e.Render != nil {
			ev.Symbol = e.Render.Symbol
			ev.Color = e.Render.Color
		}
		viewEntities = append(viewEntities, ev)
	}

	desc := g.buildDescriptor(visible)

	return &api.ServerResponse{
		Type:      respType,
		Grid:      &api.GridMeta{Width: g.World.Width, Height: g.World.Height},
		Map:       mapDTO,
		Entities:  viewEntities,
		Player:    &api.PlayerView{X: g.World.Player.Pos.X, Y: g.World.Player.Pos.Y, Facing: g.World.Player.Facing.String()},
		Scene:     g.resolveScene(desc),
		TimeOfDay: g.World.GetTimeOfDay(),
		Lighting:  string(g.World.Lighting),
		Logs:      g.logs,
	}
}

// buildDescriptor снимает дескриптор текущей сцены для кэша/рендера.
func (g *Game) buildDescriptor(visible map[int]bool) scene.Descriptor {
	var refs []scene.EntityRef
	for _, e := range systems.VisibleEntities(g.World, visible) {
		refs = append(refs, scene.EntityRef{
			ID:   e.ID,
			Type: e.Type,
			Name: e.Name,
			Pos:  e.Pos,
		})
	}

	var narrative string
	if len(g.logs) > 0 {
		narrative = g.logs[len(g.logs)-1].Text
	}

	return scene.Descriptor{
		View:      g.World.Player,
		Entities:  refs,
		Lighting:  g.World.Lighting,
		TimeOfDay: g.World.GetTimeOfDay(),
		Narrative: narrative,
	}
}

// resolveScene консультируется с кэшем до вызова внешнего рендера.
func (g *Game) resolveScene(d scene.Descriptor) *api.SceneView {
	hash := scene.GenerateHash(d)

	if artifact, ok := g.Cache.Get(hash); ok {
		return &api.SceneView{Hash: hash, Artifact: artifact, Cached: true}
	}

	artifact, err := g.Renderer.RenderScene(d)
	if err != nil {
		// Рендер внешний и может падать; игра продолжается без артефакта.
		logger.WithComponent("engine").WithError(err).Warn("Scene render failed")
		return &api.SceneView{Hash: hash}
	}

	g.Cache.Set(hash, artifact, d)
	return &api.SceneView{Hash: hash, Artifact: artifact}
}

func (g *Game) addLog(text, logType string) {
	g.logs = append(g.logs, api.LogEntry{Text: text, Type: logType})
}

// Save сохраняет мир и кэш сцен в слот.
func (g *Game) Save(store *storage.SaveStore, slot string) error {
	cacheJSON, err := g.Cache.ToJSON()
	if err != nil {
		return fmt.Errorf("engine: scene cache export failed: %w", err)
	}
	return store.SaveGame(slot, g.World.GetState(), cacheJSON)
}

// Load восстанавливает мир и кэш сцен из слота.
// При любой ошибке текущее состояние остается нетронутым.
func (g *Game) Load(store *storage.SaveStore, slot string) error {
	state, cacheJSON, err := store.LoadGame(slot)
	if err != nil {
		return err
	}

	restored := scene.NewCache(SceneCacheSize)
	if len(cacheJSON) > 0 {
		if err := restored.FromJSON(cacheJSON); err != nil {
			return err
		}
	}

	world := domain.NewWorld(state.Width, state.Height, state.Level)
	if err := world.SetState(state); err != nil {
		return err
	}

	g.World = world
	g.Cache = restored
	return nil
}
