// Package network defines the canonical wire encoding of simulation
// snapshots, the serialization boundary between the deterministic core and
// the host or transport layer. The encoding is versioned, big-endian, and
// preserves entity sequence order exactly, so a decoded snapshot is
// structurally equal to the one encoded.
package network

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/scrapforge/tanksim/state"
	"github.com/scrapforge/tanksim/vmath"
)

// Wire format: [Magic:4][Version:2][Time:8][Seed:8][TankCount:4][Tanks...]
// [BulletCount:4][Bullets...], all big-endian. Scalars travel as their raw
// Q32.32 two's-complement bits.
const (
	SnapshotMagic   uint32 = 0x544B534E // "TKSN"
	SnapshotVersion uint16 = 1

	// MaxEntities bounds decode-side allocation for a hostile or corrupt
	// stream.
	MaxEntities = 1 << 20
	// MaxVmWords bounds a single VM stack or memory image.
	MaxVmWords = 1 << 24
)

var (
	ErrBadMagic    = errors.New("network: not a snapshot stream")
	ErrBadVersion  = errors.New("network: unsupported snapshot version")
	ErrTooManyRows = errors.New("network: entity count exceeds limit")
)

// EncodeSnapshot writes s to w in the canonical wire format.
func EncodeSnapshot(w io.Writer, s *state.SimState) error {
	if len(s.Tanks) > MaxEntities || len(s.Bullets) > MaxEntities {
		return ErrTooManyRows
	}

	buf := make([]byte, 0, encodedSize(s))
	buf = binary.BigEndian.AppendUint32(buf, SnapshotMagic)
	buf = binary.BigEndian.AppendUint16(buf, SnapshotVersion)
	buf = binary.BigEndian.AppendUint64(buf, s.Time)
	buf = binary.BigEndian.AppendUint64(buf, s.Seed)

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s.Tanks)))
	for i := range s.Tanks {
		buf = appendTank(buf, &s.Tanks[i])
	}

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s.Bullets)))
	for i := range s.Bullets {
		b := &s.Bullets[i]
		buf = binary.BigEndian.AppendUint32(buf, b.ID)
		buf = appendVec(buf, b.Position)
		buf = appendVec(buf, b.Velocity)
	}

	_, err := w.Write(buf)
	return err
}

// DecodeSnapshot reads one snapshot from r. Any framing or bounds violation
// yields an error; decode never panics on malformed input.
func DecodeSnapshot(r io.Reader) (*state.SimState, error) {
	d := reader{r: r}

	if magic := d.u32(); d.err == nil && magic != SnapshotMagic {
		return nil, ErrBadMagic
	}
	if version := d.u16(); d.err == nil && version != SnapshotVersion {
		return nil, ErrBadVersion
	}

	s := &state.SimState{
		Time: d.u64(),
		Seed: d.u64(),
	}

	tankCount := d.u32()
	if d.err == nil && tankCount > MaxEntities {
		return nil, ErrTooManyRows
	}
	if d.err == nil && tankCount > 0 {
		s.Tanks = make([]state.Tank, tankCount)
		for i := range s.Tanks {
			if err := d.tank(&s.Tanks[i]); err != nil {
				return nil, err
			}
		}
	}

	bulletCount := d.u32()
	if d.err == nil && bulletCount > MaxEntities {
		return nil, ErrTooManyRows
	}
	if d.err == nil && bulletCount > 0 {
		s.Bullets = make([]state.Bullet, bulletCount)
		for i := range s.Bullets {
			b := &s.Bullets[i]
			b.ID = d.u32()
			b.Position = d.vec()
			b.Velocity = d.vec()
		}
	}

	if d.err != nil {
		return nil, fmt.Errorf("network: decode snapshot: %w", d.err)
	}
	return s, nil
}

func encodedSize(s *state.SimState) int {
	size := 4 + 2 + 8 + 8 + 4 + 4
	for i := range s.Tanks {
		t := &s.Tanks[i]
		size += 4 + 16 + 16 + 8 + 8 + 4 + // id, pos, vel, angles, health
			4 + 4 + // pc, sp
			4 + 4*len(t.VM.Stack) +
			4 + 4*len(t.VM.Memory) +
			4 // team
	}
	size += len(s.Bullets) * (4 + 16 + 16)
	return size
}

func appendScalar(buf []byte, v vmath.Scalar) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(v))
}

func appendVec(buf []byte, v vmath.Vec2) []byte {
	buf = appendScalar(buf, v.X)
	return appendScalar(buf, v.Y)
}

func appendTank(buf []byte, t *state.Tank) []byte {
	buf = binary.BigEndian.AppendUint32(buf, t.ID)
	buf = appendVec(buf, t.Position)
	buf = appendVec(buf, t.Velocity)
	buf = appendScalar(buf, t.Angle)
	buf = appendScalar(buf, t.TurretAngle)
	buf = binary.BigEndian.AppendUint32(buf, t.Health)
	buf = binary.BigEndian.AppendUint32(buf, t.VM.PC)
	buf = binary.BigEndian.AppendUint32(buf, t.VM.SP)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(t.VM.Stack)))
	for _, w := range t.VM.Stack {
		buf = binary.BigEndian.AppendUint32(buf, w)
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(t.VM.Memory)))
	for _, w := range t.VM.Memory {
		buf = binary.BigEndian.AppendUint32(buf, w)
	}
	return binary.BigEndian.AppendUint32(buf, t.TeamID)
}

// reader decodes big-endian fields, capturing the first error so call sites
// stay linear.
type reader struct {
	r   io.Reader
	err error
	buf [8]byte
}

func (d *reader) read(n int) []byte {
	if d.err != nil {
		return d.buf[:n]
	}
	_, d.err = io.ReadFull(d.r, d.buf[:n])
	return d.buf[:n]
}

func (d *reader) u16() uint16 { return binary.BigEndian.Uint16(d.read(2)) }
func (d *reader) u32() uint32 { return binary.BigEndian.Uint32(d.read(4)) }
func (d *reader) u64() uint64 { return binary.BigEndian.Uint64(d.read(8)) }

func (d *reader) scalar() vmath.Scalar {
	return vmath.Scalar(d.u64())
}

func (d *reader) vec() vmath.Vec2 {
	x := d.scalar()
	y := d.scalar()
	return vmath.NewVec2(x, y)
}

func (d *reader) words(n uint32) ([]uint32, error) {
	if n > MaxVmWords {
		return nil, ErrTooManyRows
	}
	if n == 0 || d.err != nil {
		return nil, d.err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = d.u32()
	}
	return out, d.err
}

func (d *reader) tank(t *state.Tank) error {
	t.ID = d.u32()
	t.Position = d.vec()
	t.Velocity = d.vec()
	t.Angle = d.scalar()
	t.TurretAngle = d.scalar()
	t.Health = d.u32()
	t.VM.PC = d.u32()
	t.VM.SP = d.u32()

	var err error
	if t.VM.Stack, err = d.words(d.u32()); err != nil {
		return err
	}
	if t.VM.Memory, err = d.words(d.u32()); err != nil {
		return err
	}
	t.TeamID = d.u32()
	return d.err
}
