/*
Package animation turns search and maze results into ordered visual state
transitions.

An Event says that the cell at Pos should be drawn in State once At has
elapsed since playback began. SearchEvents and MazeEvents build the event
lists; Play and Stream emit them in order at a caller-chosen speed and stop
when their context is cancelled.
*/
package animation

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Default step between consecutive events.
const (
	VisitStep = 10 * time.Millisecond
	PathStep  = 50 * time.Millisecond
	MazeStep  = 20 * time.Millisecond
)

// ErrInvalidSpeed indicates a non-positive playback speed.
var ErrInvalidSpeed = errors.New("animation: speed must be positive")

// VisualState is how a renderer should draw a cell.
type VisualState string

const (
	Default VisualState = "default"
	Wall    VisualState = "wall"
	Visited VisualState = "visited"
	Path    VisualState = "path"
)

// Event is a single state transition for one cell.
type Event struct {
	Pos   grid.Position `json:"pos"`
	State VisualState   `json:"state"`
	At    time.Duration `json:"at"` // offset from playback start
}

// SearchEvents schedules the visited cells, then the path cells once every visited cell is shown.
func SearchEvents(visited, path []grid.Position, visitStep, pathStep time.Duration) []Event {
	events := make([]Event, 0, len(visited)+len(path))
	for i, p := range visited {
		events = append(events, Event{Pos: p, State: Visited, At: time.Duration(i) * visitStep})
	}

	pathStart := time.Duration(len(visited)) * visitStep
	for i, p := range path {
		events = append(events, Event{Pos: p, State: Path, At: pathStart + time.Duration(i)*pathStep})
	}
	return events
}

// MazeEvents schedules newly walled cells one step apart.
func MazeEvents(walls []grid.Position, step time.Duration) []Event {
	events := make([]Event, len(walls))
	for i, p := range walls {
		events[i] = Event{Pos: p, State: Wall, At: time.Duration(i) * step}
	}
	return events
}

// Duration returns the offset of the last event, zero for an empty list.
func Duration(events []Event) time.Duration {
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].At
}

// Play hands events to sink in order, each no earlier than At/speed after the call.
// It returns ctx.Err() if ctx is cancelled before every event was delivered.
func Play(ctx context.Context, events []Event, speed float64, sink func(Event)) error {
	if speed <= 0 {
		return ErrInvalidSpeed
	}

	begin := time.Now()
	for _, e := range events {
		wait := time.Duration(float64(e.At)/speed) - time.Since(begin)
		if wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		sink(e)
	}
	return nil
}

// Stream is the channel form of Play. The returned channel is closed once
// every event was sent or ctx is done.
func Stream(ctx context.Context, events []Event, speed float64) (<-chan Event, error) {
	if speed <= 0 {
		return nil, ErrInvalidSpeed
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		_ = Play(ctx, events, speed, func(e Event) {
			select {
			case out <- e:
			case <-ctx.Done():
			}
		})
	}()
	return out, nil
}
