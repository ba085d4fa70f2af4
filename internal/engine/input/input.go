// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Mouse buttons as reported in Event.Button.
const (
	ButtonLeft   = sdl.BUTTON_LEFT
	ButtonMiddle = sdl.BUTTON_MIDDLE
	ButtonRight  = sdl.BUTTON_RIGHT
)

// Event is one processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	RelX   int
	RelY   int
	WheelY float32
	Button uint8
}

// Input polls and buffers events once per frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 32),
	}
}

// Update polls SDL events. It returns true when the window was asked to
// close or Escape was pressed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			typ := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				typ = EventKeyDown
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			}
			i.events = append(i.events, Event{Type: typ, Key: e.Keysym.Scancode})

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				RelX:   int(e.XRel),
				RelY:   int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			typ := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = EventMouseDown
			}
			i.events = append(i.events, Event{
				Type:   typ,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			i.events = append(i.events, Event{Type: EventMouseWheel, WheelY: dy})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether scancode went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
