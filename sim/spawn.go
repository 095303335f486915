package sim

import (
	"go.uber.org/zap"

	"github.com/scrapforge/tanksim/state"
	"github.com/scrapforge/tanksim/vmath"
)

// Entity ID ranges used by the bundled spawner. The core itself never
// assigns IDs; these are driver conventions.
const (
	firstTankID   uint32 = 1
	firstBulletID uint32 = 1 << 16
)

// SpawnBattle populates the world with two teams facing each other across
// the arena center, plus an opening volley of bullets. Placement derives
// entirely from the world seed, so every replica spawns the identical
// battle.
func (w *World) SpawnBattle(tanksPerTeam int) {
	rng := NewRand(w.st.Seed)

	center := vmath.NewVec2(
		w.mapWidth.Div(vmath.FromInt(2)),
		w.mapHeight.Div(vmath.FromInt(2)),
	)
	radius := center.X.Min(center.Y).Mul(vmath.FromFloat(0.75))

	nextTank := firstTankID
	total := tanksPerTeam * 2
	for i := 0; i < total; i++ {
		angle := vmath.TwoPi.Div(vmath.FromInt(total)).Mul(vmath.FromInt(i))
		pos := center.Add(vmath.Vec2FromPolar(radius, angle))

		// Aim roughly at the center with seeded jitter
		heading := vmath.Atan2(center.Y-pos.Y, center.X-pos.X)
		jitter := vmath.FromInt(rng.Intn(101)-50).Div(vmath.FromInt(100)) // [-0.5, 0.5]
		heading += jitter

		speed := vmath.FromInt(4 + rng.Intn(5))
		w.st.Tanks = append(w.st.Tanks, state.Tank{
			ID:          nextTank,
			Position:    pos,
			Velocity:    vmath.Vec2FromPolar(speed, heading),
			Angle:       heading,
			TurretAngle: heading,
			Health:      100,
			VM: state.VmState{
				Memory: make([]uint32, 64),
			},
			TeamID: uint32(i%2) + 1,
		})
		nextTank++
	}

	nextBullet := firstBulletID
	for i := range w.st.Tanks {
		t := &w.st.Tanks[i]
		muzzle := t.Position.Add(vmath.Vec2FromPolar(vmath.FromInt(3), t.TurretAngle))
		w.st.Bullets = append(w.st.Bullets, state.Bullet{
			ID:       nextBullet,
			Position: muzzle,
			Velocity: vmath.Vec2FromPolar(vmath.FromInt(20), t.TurretAngle),
		})
		nextBullet++
	}

	w.rebuildGrid()
	w.log.Info("battle spawned",
		zap.Int("tanks", len(w.st.Tanks)),
		zap.Int("bullets", len(w.st.Bullets)),
	)
}
