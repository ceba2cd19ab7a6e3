package renderer

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gabrielmiguelok/gridselect/internal/geometry"
	"github.com/gabrielmiguelok/gridselect/internal/input/key"
	"github.com/gabrielmiguelok/gridselect/internal/input/pointer"
)

// Translator converts tcell input events into engine input events.
// tcell reports the full button mask on every mouse event, so the
// translator diffs against the previous mask to synthesize press,
// release, and move actions.
type Translator struct {
	lastButtons tcell.ButtonMask
}

// NewTranslator creates a translator.
func NewTranslator() *Translator {
	return &Translator{}
}

// TranslateMouse converts one tcell mouse event into zero or more
// pointer events, in the order they should be handled.
func (tr *Translator) TranslateMouse(ev *tcell.EventMouse) []pointer.Event {
	x, y := ev.Position()
	pos := geometry.NewPoint(x, y)
	mods := translateMods(ev.Modifiers())
	now := ev.When()
	buttons := ev.Buttons()

	var out []pointer.Event

	// Wheel ticks are momentary; tcell reports them as button flags.
	for _, w := range []struct {
		mask tcell.ButtonMask
		btn  pointer.Button
	}{
		{tcell.WheelUp, pointer.ButtonWheelUp},
		{tcell.WheelDown, pointer.ButtonWheelDown},
		{tcell.WheelLeft, pointer.ButtonWheelLeft},
		{tcell.WheelRight, pointer.ButtonWheelRight},
	} {
		if buttons&w.mask != 0 {
			out = append(out, pointer.Event{
				Position: pos, Button: w.btn, Modifiers: mods,
				Action: pointer.ActionPress, Timestamp: now,
			})
		}
	}

	held := buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	prev := tr.lastButtons
	tr.lastButtons = held

	for _, b := range []struct {
		mask tcell.ButtonMask
		btn  pointer.Button
	}{
		{tcell.Button1, pointer.ButtonLeft},
		{tcell.Button2, pointer.ButtonRight},
		{tcell.Button3, pointer.ButtonMiddle},
	} {
		was := prev&b.mask != 0
		is := held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, pointer.Event{
				Position: pos, Button: b.btn, Modifiers: mods,
				Action: pointer.ActionPress, Timestamp: now,
			})
		case was && !is:
			out = append(out, pointer.Event{
				Position: pos, Button: b.btn, Modifiers: mods,
				Action: pointer.ActionRelease, Timestamp: now,
			})
		}
	}

	if len(out) == 0 {
		// Pure motion; carry the held button for defensive recovery.
		btn := pointer.ButtonNone
		if held&tcell.Button1 != 0 {
			btn = pointer.ButtonLeft
		}
		out = append(out, pointer.Event{
			Position: pos, Button: btn, Modifiers: mods,
			Action: pointer.ActionMove, Timestamp: now,
		})
	}
	return out
}

// TranslateKey converts a tcell key event. The second return is false
// for keys the grid does not handle.
func TranslateKey(ev *tcell.EventKey) (key.Event, bool) {
	var k key.Key
	switch ev.Key() {
	case tcell.KeyUp:
		k = key.KeyUp
	case tcell.KeyDown:
		k = key.KeyDown
	case tcell.KeyLeft:
		k = key.KeyLeft
	case tcell.KeyRight:
		k = key.KeyRight
	case tcell.KeyHome:
		k = key.KeyHome
	case tcell.KeyEnd:
		k = key.KeyEnd
	case tcell.KeyPgUp:
		k = key.KeyPageUp
	case tcell.KeyPgDn:
		k = key.KeyPageDown
	case tcell.KeyEscape:
		k = key.KeyEscape
	default:
		return key.Event{}, false
	}
	return key.Event{
		Key:       k,
		Modifiers: translateMods(ev.Modifiers()),
		Timestamp: time.Now(),
	}, true
}

// translateMods converts a tcell modifier mask.
func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
