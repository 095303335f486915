package state

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/scrapforge/tanksim/vmath"
)

// Digest returns an order-sensitive 64-bit hash of the snapshot. Replicas
// at the same tick must produce equal digests; any field or ordering
// difference changes the value. This is the cheap cross-replica divergence
// check that the deterministic core exists to make possible.
func (s *SimState) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	u64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}
	u32 := func(v uint32) {
		binary.BigEndian.PutUint32(buf[:4], v)
		d.Write(buf[:4])
	}
	scalar := func(v vmath.Scalar) {
		u64(uint64(v))
	}
	vec := func(v vmath.Vec2) {
		scalar(v.X)
		scalar(v.Y)
	}

	u64(s.Time)
	u64(s.Seed)

	u32(uint32(len(s.Tanks)))
	for i := range s.Tanks {
		t := &s.Tanks[i]
		u32(t.ID)
		vec(t.Position)
		vec(t.Velocity)
		scalar(t.Angle)
		scalar(t.TurretAngle)
		u32(t.Health)
		u32(t.VM.PC)
		u32(t.VM.SP)
		u32(uint32(len(t.VM.Stack)))
		for _, w := range t.VM.Stack {
			u32(w)
		}
		u32(uint32(len(t.VM.Memory)))
		for _, w := range t.VM.Memory {
			u32(w)
		}
		u32(t.TeamID)
	}

	u32(uint32(len(s.Bullets)))
	for i := range s.Bullets {
		b := &s.Bullets[i]
		u32(b.ID)
		vec(b.Position)
		vec(b.Velocity)
	}

	return d.Sum64()
}
