// Package state defines the deterministic simulation snapshot: plain data
// records with no behavior beyond cloning, structural equality, and
// digesting. Slice order is insertion order and is significant; downstream
// deterministic processing iterates in that order.
package state

import "github.com/scrapforge/tanksim/vmath"

// VmState is the per-tank program execution context. It is an inert
// placeholder: the core preserves its shape across snapshots and the wire
// but implements no execution semantics over it.
type VmState struct {
	PC     uint32
	SP     uint32
	Stack  []uint32
	Memory []uint32
}

// Clone returns a deep copy.
func (v VmState) Clone() VmState {
	out := v
	out.Stack = append([]uint32(nil), v.Stack...)
	out.Memory = append([]uint32(nil), v.Memory...)
	return out
}

// Tank is one combatant. IDs are caller-assigned; the core never allocates
// or recycles them.
type Tank struct {
	ID          uint32
	Position    vmath.Vec2
	Velocity    vmath.Vec2
	Angle       vmath.Scalar // hull heading, radians
	TurretAngle vmath.Scalar
	Health      uint32
	VM          VmState
	TeamID      uint32
}

// Clone returns a deep copy.
func (t Tank) Clone() Tank {
	out := t
	out.VM = t.VM.Clone()
	return out
}

// Bullet is a projectile in flight.
type Bullet struct {
	ID       uint32
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// SimState is the top-level snapshot exchanged with the host at tick
// boundaries.
type SimState struct {
	Time    uint64 // tick counter
	Seed    uint64
	Tanks   []Tank
	Bullets []Bullet
}

// Clone returns a deep copy; mutating the copy never aliases the original.
func (s *SimState) Clone() *SimState {
	out := &SimState{
		Time: s.Time,
		Seed: s.Seed,
	}
	if s.Tanks != nil {
		out.Tanks = make([]Tank, len(s.Tanks))
		for i, t := range s.Tanks {
			out.Tanks[i] = t.Clone()
		}
	}
	if s.Bullets != nil {
		out.Bullets = append([]Bullet(nil), s.Bullets...)
	}
	return out
}
