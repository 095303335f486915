package physics

import (
	"iter"

	"github.com/scrapforge/tanksim/vmath"
)

// IDSet is a cell's membership: a set of object identifiers, so insertion
// is idempotent per cell.
type IDSet map[uint32]struct{}

// SpatialHashMap is a uniform grid over a bounded rectangular map, used as a
// transient per-tick broad-phase index. The owner clears and rebuilds it
// every tick; it is never mutated concurrently with being queried.
//
// Cells are linearized as x + y*gridWidth.
type SpatialHashMap struct {
	mapWidth  vmath.Scalar
	mapHeight vmath.Scalar

	cellWidth     vmath.Scalar
	invCellWidth  vmath.Scalar
	cellHeight    vmath.Scalar
	invCellHeight vmath.Scalar

	gridWidth  uint32 // width in cells
	gridHeight uint32 // height in cells

	grid []IDSet
}

// NewSpatialHashMap partitions a mapWidth x mapHeight map into
// gridWidth x gridHeight equal cells. Cell size inverses are precomputed so
// queries multiply instead of divide.
func NewSpatialHashMap(mapWidth, mapHeight vmath.Scalar, gridWidth, gridHeight uint32) *SpatialHashMap {
	cellWidth := mapWidth.Div(vmath.FromUint32(gridWidth))
	cellHeight := mapHeight.Div(vmath.FromUint32(gridHeight))

	grid := make([]IDSet, gridWidth*gridHeight)
	for i := range grid {
		grid[i] = make(IDSet)
	}

	return &SpatialHashMap{
		mapWidth:      mapWidth,
		mapHeight:     mapHeight,
		cellWidth:     cellWidth,
		invCellWidth:  vmath.One.Div(cellWidth),
		cellHeight:    cellHeight,
		invCellHeight: vmath.One.Div(cellHeight),
		gridWidth:     gridWidth,
		gridHeight:    gridHeight,
		grid:          grid,
	}
}

// GridWidth returns the number of cells along the x axis.
func (m *SpatialHashMap) GridWidth() uint32 { return m.gridWidth }

// GridHeight returns the number of cells along the y axis.
func (m *SpatialHashMap) GridHeight() uint32 { return m.gridHeight }

// cellIndex converts one clamped coordinate to a cell index along an axis.
// The coordinate clamp has already run, but a coordinate exactly equal to
// the map dimension floors to one past the last cell, so the index is
// clamped a second time.
func cellIndex(coord, invCellSize vmath.Scalar, cells uint32) uint32 {
	idx := coord.Mul(invCellSize).Int()
	if idx < 0 {
		return 0
	}
	if uint32(idx) >= cells {
		return cells - 1
	}
	return uint32(idx)
}

// CellKeys returns the keys of every cell the AABB touches, as a restartable
// lazy sequence. Corners are clamped to [0, mapDimension] per axis first, so
// a box partially or fully outside the map indexes into the boundary cells
// rather than out of range.
func (m *SpatialHashMap) CellKeys(aabb AABB) iter.Seq[uint32] {
	minX := aabb.Min.X.Clamp(0, m.mapWidth)
	minY := aabb.Min.Y.Clamp(0, m.mapHeight)
	maxX := aabb.Max.X.Clamp(0, m.mapWidth)
	maxY := aabb.Max.Y.Clamp(0, m.mapHeight)

	minXIdx := cellIndex(minX, m.invCellWidth, m.gridWidth)
	minYIdx := cellIndex(minY, m.invCellHeight, m.gridHeight)
	maxXIdx := cellIndex(maxX, m.invCellWidth, m.gridWidth)
	maxYIdx := cellIndex(maxY, m.invCellHeight, m.gridHeight)

	gridWidth := m.gridWidth
	return func(yield func(uint32) bool) {
		for y := minYIdx; y <= maxYIdx; y++ {
			for x := minXIdx; x <= maxXIdx; x++ {
				if !yield(x + y*gridWidth) {
					return
				}
			}
		}
	}
}

// Insert adds objectID to every cell the AABB touches. Re-inserting the same
// ID into the same cell is a no-op.
func (m *SpatialHashMap) Insert(objectID uint32, aabb AABB) {
	for key := range m.CellKeys(aabb) {
		m.grid[key][objectID] = struct{}{}
	}
}

// Get returns a copy of one cell's membership by linear key. An invalid key
// returns an empty set, never fails; boundary probes are routine.
func (m *SpatialHashMap) Get(key uint32) IDSet {
	result := make(IDSet)
	if int(key) >= len(m.grid) {
		return result
	}
	for id := range m.grid[key] {
		result[id] = struct{}{}
	}
	return result
}

// Query returns the deduplicated union of object IDs in every cell the AABB
// touches. Over-inclusive by design: exact overlap tests are the caller's
// narrow phase.
func (m *SpatialHashMap) Query(aabb AABB) IDSet {
	result := make(IDSet)
	for key := range m.CellKeys(aabb) {
		for id := range m.grid[key] {
			result[id] = struct{}{}
		}
	}
	return result
}

// Clear empties every cell's membership. Grid dimensions are unchanged; this
// is the per-tick rebuild mechanism.
func (m *SpatialHashMap) Clear() {
	for i := range m.grid {
		clear(m.grid[i])
	}
}
