package dungeon

import (
	"math/rand"

	"sprite-server/internal/domain"
)

// Rect - прямоугольная область в координатах карты.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Center возвращает центральную клетку области.
func (r Rect) Center() domain.Position {
	return domain.Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// RoomKind - назначение комнаты.
type RoomKind string

const (
	RoomChamber  RoomKind = "CHAMBER"
	RoomCorridor RoomKind = "CORRIDOR"
	RoomTreasure RoomKind = "TREASURE_ROOM"
	RoomBoss     RoomKind = "BOSS_ROOM"
	RoomStart    RoomKind = "START_ROOM"
)

// Room - комната, вписанная в лист BSP-дерева.
// Создается один раз генератором и дальше не мутирует: расстановка дверей
// и коридоры пишут только в клетки мира.
type Room struct {
	ID string `json:"id"`
	Rect
	Kind RoomKind `json:"kind"`
}

// --- BSP-ДЕРЕВО ---

// noChild маркирует отсутствие потомка у узла арены.
const noChild = -1

// bspNode - узел дерева разбиения. Лист (left == right == noChild) держит
// опциональную комнату; внутренний узел - ровно двух потомков и никогда комнату.
type bspNode struct {
	bounds      Rect
	left, right int
	room        int // индекс комнаты у листа, noChild если комната не вписана
}

// bspTree - арена узлов. Потомки адресуются индексами в срезе, а не
// указателями: нет nil-разыменований и висячих ссылок, лист/внутренний
// узел различаются по left/right.
// Дерево живет только внутри генерации и отбрасывается после сборки Dungeon.
type bspTree struct {
	nodes []bspNode
	rooms []Room
}

func (t *bspTree) addNode(bounds Rect) int {
	t.nodes = append(t.nodes, bspNode{bounds: bounds, left: noChild, right: noChild, room: noChild})
	return len(t.nodes) - 1
}

// buildTree рекурсивно разбивает область и возвращает дерево с корнем в nodes[0].
func buildTree(bounds Rect, maxDepth, minRoomSize int, rng *rand.Rand) *bspTree {
	t := &bspTree{}
	root := t.addNode(bounds)
	t.split(root, 0, maxDepth, minRoomSize, rng)
	return t
}

// split делит узел на двух потомков, точно замощающих родителя.
// Остановка: достигнута глубина maxDepth либо хотя бы одно измерение
// меньше 2*minRoomSize (иначе потомок не вместил бы комнату).
func (t *bspTree) split(idx, depth, maxDepth, minRoomSize int, rng *rand.Rand) {
	b := t.nodes[idx].bounds

	if depth >= maxDepth {
		return
	}
	if b.W < 2*minRoomSize || b.H < 2*minRoomSize {
		return
	}

	// Ось разреза: предпочитаем длинную сторону, при равенстве - честная монетка.
	var splitHorizontal bool // true = горизонтальный разрез (верх/низ)
	switch {
	case b.H > b.W:
		splitHorizontal = true
	case b.W > b.H:
		splitHorizontal = false
	default:
		splitHorizontal = rng.Intn(2) == 0
	}

	extent := b.W
	if splitHorizontal {
		extent = b.H
	}

	// Смещение разреза равномерно в [minRoomSize, extent-minRoomSize]:
	// обоим потомкам гарантирован минимум под комнату.
	offset := minRoomSize + rng.Intn(extent-2*minRoomSize+1)

	var leftBounds, rightBounds Rect
	if splitHorizontal {
		leftBounds = Rect{X: b.X, Y: b.Y, W: b.W, H: offset}
		rightBounds = Rect{X: b.X, Y: b.Y + offset, W: b.W, H: b.H - offset}
	} else {
		leftBounds = Rect{X: b.X, Y: b.Y, W: offset, H: b.H}
		rightBounds = Rect{X: b.X + offset, Y: b.Y, W: b.W - offset, H: b.H}
	}

	left := t.addNode(leftBounds)
	right := t.addNode(rightBounds)
	t.nodes[idx].left = left
	t.nodes[idx].right = right

	t.split(left, depth+1, maxDepth, minRoomSize, rng)
	t.split(right, depth+1, maxDepth, minRoomSize, rng)
}

// inscribeRooms вписывает по комнате в каждый лист (обход слева направо,
// этот порядок и есть "порядок генерации" для коридоров) и возвращает их.
func (t *bspTree) inscribeRooms(minRoomSize, maxRoomSize int, rng *rand.Rand) []Room {
	t.walkLeaves(0, func(idx int) {
		leaf := t.nodes[idx].bounds
		room := inscribeRoom(leaf, minRoomSize, maxRoomSize, rng)
		t.nodes[idx].room = len(t.rooms)
		t.rooms = append(t.rooms, room)
	})
	return t.rooms
}

func (t *bspTree) walkLeaves(idx int, visit func(int)) {
	n := t.nodes[idx]
	if n.left == noChild && n.right == noChild {
		visit(idx)
		return
	}
	t.walkLeaves(n.left, visit)
	t.walkLeaves(n.right, visit)
}

// inscribeRoom выбирает размер и положение комнаты внутри листа.
// По одной клетке с каждой стороны остается под стены.
func inscribeRoom(leaf Rect, minRoomSize, maxRoomSize int, rng *rand.Rand) Room {
	w := roomExtent(leaf.W, minRoomSize, maxRoomSize, rng)
	h := roomExtent(leaf.H, minRoomSize, maxRoomSize, rng)

	x := leaf.X + 1 + intnSafe(rng, leaf.W-2-w+1)
	y := leaf.Y + 1 + intnSafe(rng, leaf.H-2-h+1)

	return Room{Rect: Rect{X: x, Y: y, W: w, H: h}, Kind: RoomChamber}
}

// roomExtent возвращает размер комнаты по одной оси:
// равномерно из [minSize, min(maxSize, extent-2)]. Если лист слишком мал
// даже для minSize, размер ужимается до наибольшего влезающего (но не ниже 1).
func roomExtent(extent, minSize, maxSize int, rng *rand.Rand) int {
	upper := maxSize
	if extent-2 < upper {
		upper = extent - 2
	}
	if upper < 1 {
		upper = 1
	}
	if upper <= minSize {
		return upper
	}
	return minSize + rng.Intn(upper-minSize+1)
}

// intnSafe - rng.Intn с защитой от неположительного диапазона
// (ужатая комната занимает весь доступный интервал).
func intnSafe(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return rng.Intn(n)
}
