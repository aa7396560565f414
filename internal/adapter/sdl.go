package adapter

import (
	"fmt"
	"log"
	"sync"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/Atomic-Germ/snes9xGC/internal/device"
)

// Bridge owns the SDL joystick subsystem and hands out one Adapter per
// controller family. Pump must be called once per frame from the poll
// goroutine; SDL requires event handling and device access on the
// thread that initialized it.
type Bridge struct {
	mu        sync.Mutex
	joysticks map[sdl.JoystickID]*sdlJoystick
	byFamily  map[device.Family][]*sdlJoystick
}

type sdlJoystick struct {
	js    *sdl.Joystick
	id    sdl.JoystickID
	name  string
	model *Model
}

// OpenBridge initializes the SDL joystick subsystem and opens any
// already attached devices.
func OpenBridge() (*Bridge, error) {
	if !sdl.Init(sdl.InitJoystick) {
		return nil, fmt.Errorf("sdl init: %s", sdl.GetError())
	}

	b := &Bridge{
		joysticks: make(map[sdl.JoystickID]*sdlJoystick),
		byFamily:  make(map[device.Family][]*sdlJoystick),
	}
	for _, id := range sdl.GetJoysticks() {
		b.open(id)
	}
	return b, nil
}

// Close releases every joystick and shuts SDL down.
func (b *Bridge) Close() {
	b.mu.Lock()
	for id, j := range b.joysticks {
		sdl.CloseJoystick(j.js)
		delete(b.joysticks, id)
	}
	b.byFamily = make(map[device.Family][]*sdlJoystick)
	b.mu.Unlock()
	sdl.Quit()
}

// Pump drains the SDL event queue, opening and closing joysticks as
// they come and go.
func (b *Bridge) Pump() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			b.open(event.JDevice().Which)
		case sdl.EventJoystickRemoved:
			b.remove(event.JDevice().Which)
		}
	}
}

func (b *Bridge) open(instanceID sdl.JoystickID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.joysticks[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		log.Printf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	id := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	model := ModelFor(vendorID, productID)

	j := &sdlJoystick{js: js, id: id, name: name, model: model}
	b.joysticks[id] = j
	b.byFamily[model.Family] = append(b.byFamily[model.Family], j)

	log.Printf("Joystick connected: %s (VID=%04X PID=%04X) model=%s family=%s",
		name, vendorID, productID, model.Name, model.Family)
}

func (b *Bridge) remove(instanceID sdl.JoystickID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	j, exists := b.joysticks[instanceID]
	if !exists {
		return
	}

	log.Printf("Joystick disconnected: %s", j.name)
	sdl.CloseJoystick(j.js)
	delete(b.joysticks, instanceID)

	fam := b.byFamily[j.model.Family]
	for i, e := range fam {
		if e == j {
			b.byFamily[j.model.Family] = append(fam[:i], fam[i+1:]...)
			break
		}
	}
}

// Adapter returns the adapter view for one family. Channel n maps to
// the n-th attached device of that family.
func (b *Bridge) Adapter(f device.Family) Adapter {
	return &familyView{bridge: b, family: f}
}

// Adapters builds the full adapter set over this bridge.
func (b *Bridge) Adapters() Set {
	set := make(Set, device.NumFamilies)
	for f := device.GCPad; f.Valid(); f++ {
		set[f] = b.Adapter(f)
	}
	return set
}

// familyView exposes one family's devices through the Adapter contract.
type familyView struct {
	bridge *Bridge
	family device.Family
}

func (v *familyView) joystick(channel int) *sdlJoystick {
	if channel < 0 || channel >= device.NumChannels {
		return nil
	}
	fam := v.bridge.byFamily[v.family]
	if channel >= len(fam) {
		return nil
	}
	return fam[channel]
}

func (v *familyView) ScanPads() bool {
	v.bridge.mu.Lock()
	defer v.bridge.mu.Unlock()

	for _, j := range v.bridge.byFamily[v.family] {
		if sdl.JoystickConnected(j.js) {
			return true
		}
	}
	return false
}

func (v *familyView) IsConnected() bool {
	v.bridge.mu.Lock()
	defer v.bridge.mu.Unlock()
	return len(v.bridge.byFamily[v.family]) > 0
}

func (v *familyView) ButtonsHeld(channel int) uint32 {
	v.bridge.mu.Lock()
	defer v.bridge.mu.Unlock()

	j := v.joystick(channel)
	if j == nil || !sdl.JoystickConnected(j.js) {
		return 0
	}

	var raw uint32
	numButtons := sdl.GetNumJoystickButtons(j.js)
	for _, bm := range j.model.Buttons {
		if bm.Index < numButtons {
			if sdl.GetJoystickButton(j.js, bm.Index) {
				raw |= bm.Code
			}
		}
	}
	if len(j.model.Hats) > 0 && sdl.GetNumJoystickHats(j.js) > 0 {
		hat := sdl.GetJoystickHat(j.js, 0)
		for _, hm := range j.model.Hats {
			if hat&hm.Bit != 0 {
				raw |= hm.Code
			}
		}
	}
	return raw
}

// Stick reads the first two axes as the main analog stick. SDL reports
// y growing downward; flip it so positive is up.
func (v *familyView) Stick(channel int) (x, y int16) {
	v.bridge.mu.Lock()
	defer v.bridge.mu.Unlock()

	j := v.joystick(channel)
	if j == nil || !sdl.JoystickConnected(j.js) {
		return 0, 0
	}
	if sdl.GetNumJoystickAxes(j.js) < 2 {
		return 0, 0
	}
	x = sdl.GetJoystickAxis(j.js, 0)
	rawY := sdl.GetJoystickAxis(j.js, 1)
	if rawY == -32768 {
		rawY = -32767
	}
	return x, -rawY
}

func (v *familyView) Status() string {
	v.bridge.mu.Lock()
	defer v.bridge.mu.Unlock()

	fam := v.bridge.byFamily[v.family]
	if len(fam) == 0 {
		return fmt.Sprintf("%s: not connected", v.family)
	}
	name := fam[0].model.Name
	if fam[0].model.GCEncoded {
		return fmt.Sprintf("%s: connected (%d)", name, len(fam))
	}
	return fmt.Sprintf("%s: connected (%d)", v.family, len(fam))
}
