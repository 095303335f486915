package sim

import (
	"slices"

	"go.uber.org/zap"

	"github.com/scrapforge/tanksim/physics"
	"github.com/scrapforge/tanksim/state"
	"github.com/scrapforge/tanksim/vmath"
)

// World owns one simulation instance: the snapshot being advanced and the
// spatial grid rebuilt from it every tick. Replicas wanting parallel runs
// each construct their own World; nothing here is shared.
type World struct {
	cfg Config
	log *zap.Logger

	st   *state.SimState
	grid *physics.SpatialHashMap

	mapWidth  vmath.Scalar
	mapHeight vmath.Scalar
	tankSize  vmath.Vec2
	bulletSz  vmath.Vec2
	dt        vmath.Scalar // seconds per tick
}

// NewWorld builds a world from a validated config. A nil logger disables
// logging; the math and grid layers never log regardless.
func NewWorld(cfg Config, seed uint64, log *zap.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	mapWidth := vmath.FromFloat(cfg.MapWidth)
	mapHeight := vmath.FromFloat(cfg.MapHeight)

	w := &World{
		cfg:       cfg,
		log:       log,
		st:        &state.SimState{Seed: seed},
		grid:      physics.NewSpatialHashMap(mapWidth, mapHeight, cfg.GridWidth, cfg.GridHeight),
		mapWidth:  mapWidth,
		mapHeight: mapHeight,
		tankSize:  vmath.Vec2FromFloat(cfg.TankSize, cfg.TankSize),
		bulletSz:  vmath.Vec2FromFloat(cfg.BulletSize, cfg.BulletSize),
		dt:        vmath.One.Div(vmath.FromUint32(cfg.TickRate)),
	}

	log.Info("world created",
		zap.Uint64("seed", seed),
		zap.Float64("map_width", cfg.MapWidth),
		zap.Float64("map_height", cfg.MapHeight),
		zap.Uint32("grid_width", cfg.GridWidth),
		zap.Uint32("grid_height", cfg.GridHeight),
	)
	return w, nil
}

// State exposes the snapshot for host consumption at tick boundaries.
func (w *World) State() *state.SimState { return w.st }

// Grid exposes the broad-phase index rebuilt by the last Step.
func (w *World) Grid() *physics.SpatialHashMap { return w.grid }

// TankAABB returns the box a tank occupies at its current position.
func (w *World) TankAABB(t *state.Tank) physics.AABB {
	return physics.AABBFromSize(t.Position, w.tankSize)
}

// BulletAABB returns the box a bullet occupies at its current position.
func (w *World) BulletAABB(b *state.Bullet) physics.AABB {
	return physics.AABBFromSize(b.Position, w.bulletSz)
}

// Step advances the simulation one tick: integrate velocities, bounce tanks
// off the arena walls, cull escaped bullets, then clear and rebuild the grid
// from fresh boxes. The rebuild is total every tick; there is no incremental
// membership update to get wrong.
func (w *World) Step() {
	for i := range w.st.Tanks {
		w.integrateTank(&w.st.Tanks[i])
	}

	kept := w.st.Bullets[:0]
	for i := range w.st.Bullets {
		b := w.st.Bullets[i]
		b.Position = b.Position.Add(b.Velocity.Scale(w.dt))
		if w.inArena(b.Position) {
			kept = append(kept, b)
		}
	}
	culled := len(w.st.Bullets) - len(kept)
	w.st.Bullets = kept

	w.rebuildGrid()
	w.st.Time++

	if culled > 0 {
		w.log.Debug("bullets culled",
			zap.Uint64("tick", w.st.Time),
			zap.Int("count", culled),
		)
	}
}

// integrateTank moves a tank by one tick and reflects it off arena bounds,
// clamping position to the wall and negating the offending velocity axis.
func (w *World) integrateTank(t *state.Tank) {
	t.Position = t.Position.Add(t.Velocity.Scale(w.dt))

	if t.Position.X < 0 {
		t.Position.X = 0
		t.Velocity.X = -t.Velocity.X
	} else if t.Position.X > w.mapWidth {
		t.Position.X = w.mapWidth
		t.Velocity.X = -t.Velocity.X
	}
	if t.Position.Y < 0 {
		t.Position.Y = 0
		t.Velocity.Y = -t.Velocity.Y
	} else if t.Position.Y > w.mapHeight {
		t.Position.Y = w.mapHeight
		t.Velocity.Y = -t.Velocity.Y
	}
}

func (w *World) inArena(p vmath.Vec2) bool {
	return p.X >= 0 && p.X <= w.mapWidth && p.Y >= 0 && p.Y <= w.mapHeight
}

func (w *World) rebuildGrid() {
	w.grid.Clear()
	for i := range w.st.Tanks {
		t := &w.st.Tanks[i]
		w.grid.Insert(t.ID, w.TankAABB(t))
	}
	for i := range w.st.Bullets {
		b := &w.st.Bullets[i]
		w.grid.Insert(b.ID, w.BulletAABB(b))
	}
}

// CandidatePairs returns every broad-phase candidate pair from the current
// grid, each pair ordered (low, high) and the list sorted, so downstream
// processing iterates identically on every replica. Pairs are candidates
// only; exact overlap is the caller's narrow phase.
func (w *World) CandidatePairs() [][2]uint32 {
	seen := make(map[[2]uint32]struct{})

	add := func(selfID uint32, aabb physics.AABB) {
		for otherID := range w.grid.Query(aabb) {
			if otherID == selfID {
				continue
			}
			pair := [2]uint32{selfID, otherID}
			if pair[0] > pair[1] {
				pair[0], pair[1] = pair[1], pair[0]
			}
			seen[pair] = struct{}{}
		}
	}

	for i := range w.st.Tanks {
		t := &w.st.Tanks[i]
		add(t.ID, w.TankAABB(t))
	}
	for i := range w.st.Bullets {
		b := &w.st.Bullets[i]
		add(b.ID, w.BulletAABB(b))
	}

	pairs := make([][2]uint32, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	slices.SortFunc(pairs, func(a, b [2]uint32) int {
		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		if a[1] < b[1] {
			return -1
		}
		if a[1] > b[1] {
			return 1
		}
		return 0
	})
	return pairs
}
