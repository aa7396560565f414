// Package mapping owns the button-mapping matrix: the table assigning
// physical button codes to logical button slots for every
// (console scheme, controller family) pair.
package mapping

import (
	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

// Registry holds the full mapping matrix. A zero entry means the slot is
// unmapped and can never be satisfied. Construct with NewRegistry and
// inject it where rows are needed; rebuilds must not overlap row reads,
// which the single poll goroutine guarantees.
type Registry struct {
	rows [snes.NumSchemes][device.NumFamilies][snes.MaxSlots]uint32
}

// NewRegistry returns a registry populated with the canonical defaults
// for every pair.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Rebuild(snes.SchemeAll, device.FamilyAll)
	return r
}

// Rebuild overwrites rows with their canonical defaults. Either argument
// may be the ALL sentinel: SchemeAll rebuilds the whole matrix,
// FamilyAll rebuilds every family's row for one scheme. An undefined
// pairing is a no-op; the matrix is left unchanged. Row references
// returned by Row before the call are stale for the rows touched.
func (r *Registry) Rebuild(s snes.Scheme, f device.Family) {
	if s == snes.SchemeAll {
		for sc := snes.Pad; sc.Valid(); sc++ {
			for fam := device.GCPad; fam.Valid(); fam++ {
				r.rebuildRow(sc, fam)
			}
		}
		return
	}
	if !s.Valid() {
		return
	}
	if f == device.FamilyAll {
		for fam := device.GCPad; fam.Valid(); fam++ {
			r.rebuildRow(s, fam)
		}
		return
	}
	if !f.Valid() {
		return
	}
	r.rebuildRow(s, f)
}

func (r *Registry) rebuildRow(s snes.Scheme, f device.Family) {
	row := &r.rows[s][f]
	*row = [snes.MaxSlots]uint32{}
	copy(row[:], defaultRows[s][f])
}

// Row returns a copy of the row for one pair, sized to the scheme's slot
// count. Returns nil for an undefined pairing.
func (r *Registry) Row(s snes.Scheme, f device.Family) []uint32 {
	if !s.Valid() || !f.Valid() {
		return nil
	}
	row := make([]uint32, snes.SlotCount(s))
	copy(row, r.rows[s][f][:len(row)])
	return row
}

// Entry returns the raw code assigned to one logical slot, or 0 if the
// pair or slot is out of range.
func (r *Registry) Entry(s snes.Scheme, f device.Family, slot int) uint32 {
	if !s.Valid() || !f.Valid() || slot < 0 || slot >= snes.SlotCount(s) {
		return 0
	}
	return r.rows[s][f][slot]
}

// SetEntry overwrites a single slot assignment, the path user remaps take
// after a rebuild. Returns false and leaves the matrix unchanged if the
// pair or slot is out of range.
func (r *Registry) SetEntry(s snes.Scheme, f device.Family, slot int, code uint32) bool {
	if !s.Valid() || !f.Valid() || slot < 0 || slot >= snes.SlotCount(s) {
		return false
	}
	r.rows[s][f][slot] = code
	return true
}
