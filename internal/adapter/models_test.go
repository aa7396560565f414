package adapter

import (
	"testing"

	"github.com/Atomic-Germ/snes9xGC/internal/device"
)

func TestModelForKnownDevices(t *testing.T) {
	tests := []struct {
		vendor, product uint16
		wantName        string
		wantGCEncoded   bool
	}{
		{0x0403, 0x97C1, "Retrode", true},
		{0x0E8F, 0x3013, "Mayflash", true},
		{0x057E, 0x0337, "gcpad", false},
		{0x057E, 0x2009, "wiiupro", false},
	}
	for _, tt := range tests {
		m := ModelFor(tt.vendor, tt.product)
		if m.Name != tt.wantName || m.GCEncoded != tt.wantGCEncoded {
			t.Errorf("ModelFor(%04X, %04X) = %s/%v, want %s/%v",
				tt.vendor, tt.product, m.Name, m.GCEncoded, tt.wantName, tt.wantGCEncoded)
		}
	}
}

func TestModelForUnknownFallsBack(t *testing.T) {
	m := ModelFor(0xFFFF, 0xFFFF)
	if m != gcPadModel {
		t.Errorf("unknown device mapped to %s, want gcpad fallback", m.Name)
	}
}

func TestModelTablesWellFormed(t *testing.T) {
	models := []*Model{
		gcPadModel, wiimoteModel, nunchukModel,
		classicModel, proModel, gamepadModel,
		retrodeModel, mayflashModel,
	}
	for _, m := range models {
		if !m.Family.Valid() {
			t.Errorf("%s: invalid family", m.Name)
		}
		seen := make(map[int32]bool)
		for _, b := range m.Buttons {
			if b.Code == 0 {
				t.Errorf("%s: button index %d maps to 0", m.Name, b.Index)
			}
			if seen[b.Index] {
				t.Errorf("%s: button index %d mapped twice", m.Name, b.Index)
			}
			seen[b.Index] = true
		}
		for _, h := range m.Hats {
			if h.Code == 0 {
				t.Errorf("%s: hat bit %#x maps to 0", m.Name, h.Bit)
			}
		}
	}
}

func TestNullAdapter(t *testing.T) {
	var n Null
	if n.ScanPads() || n.IsConnected() {
		t.Error("null adapter reported hardware")
	}
	if n.ButtonsHeld(0) != 0 {
		t.Error("null adapter held buttons")
	}
	if n.Status() == "" {
		t.Error("null adapter has no status text")
	}
}

func TestStatusLinesOrder(t *testing.T) {
	s := Set{
		device.GCPad:   Null{},
		device.Wiimote: Null{},
	}
	lines := s.StatusLines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}
