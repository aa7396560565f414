package input

import (
	"testing"

	"github.com/go-test/deep"
)

func TestComputeDeltaEmpty(t *testing.T) {
	var a, b FrameState
	d := ComputeDelta(a, b)
	if !d.IsEmpty() {
		t.Errorf("identical frames produced a delta: %+v", d)
	}
}

func TestComputeDeltaOnlyChangedChannels(t *testing.T) {
	var old, cur FrameState
	old.Channels[0] = ChannelState{Connected: true, Held: 0x10}
	cur.Channels[0] = old.Channels[0]
	cur.Channels[2] = ChannelState{Connected: true, Held: 0x80}

	d := ComputeDelta(old, cur)
	if d.IsEmpty() {
		t.Fatal("change not detected")
	}
	if d.Channels[0] != nil || d.Channels[1] != nil || d.Channels[3] != nil {
		t.Errorf("unchanged channels present in delta: %+v", d)
	}
	if diff := deep.Equal(*d.Channels[2], cur.Channels[2]); diff != nil {
		t.Errorf("changed channel mismatch: %v", diff)
	}
}

func TestComputeDeltaStickChange(t *testing.T) {
	var old, cur FrameState
	cur.Channels[1].StickX = 42
	if ComputeDelta(old, cur).IsEmpty() {
		t.Error("stick movement not detected")
	}
}
