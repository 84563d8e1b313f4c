// Package boardapi exposes boards, wall editing, search and maze generation over HTTP.
package boardapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// ToggleWallRequest names the cell whose wall flag should flip.
type ToggleWallRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// BoardResponse describes a board's grid.
type BoardResponse struct {
	ID     uuid.UUID       `json:"id"`
	Rows   int             `json:"rows"`
	Cols   int             `json:"cols"`
	Start  grid.Position   `json:"start"`
	Finish grid.Position   `json:"finish"`
	Walls  []grid.Position `json:"walls"`
}

// EventResponse is a visual state transition scheduled AtMs milliseconds after playback starts.
type EventResponse struct {
	Row   int                   `json:"row"`
	Col   int                   `json:"col"`
	State animation.VisualState `json:"state"`
	AtMs  int64                 `json:"at_ms"`
}

// SearchResponse is the replayable outcome of a search.
type SearchResponse struct {
	Found   bool            `json:"found"`
	Visited []grid.Position `json:"visited"`
	Path    []grid.Position `json:"path"`
	Events  []EventResponse `json:"events"`
}

// MazeResponse is the replayable outcome of maze generation.
type MazeResponse struct {
	Walls  []grid.Position `json:"walls"`
	Events []EventResponse `json:"events"`
}

func newBoardResponse(id uuid.UUID, g *grid.Grid) *BoardResponse {
	return &BoardResponse{
		ID:     id,
		Rows:   g.Rows(),
		Cols:   g.Cols(),
		Start:  g.StartPos(),
		Finish: g.FinishPos(),
		Walls:  nonNil(g.Walls()),
	}
}

func newEventResponse(e animation.Event) EventResponse {
	return EventResponse{
		Row:   e.Pos.Row,
		Col:   e.Pos.Col,
		State: e.State,
		AtMs:  e.At.Milliseconds(),
	}
}

func newEventResponses(events []animation.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = newEventResponse(e)
	}
	return out
}

func nonNil(ps []grid.Position) []grid.Position {
	if ps == nil {
		return []grid.Position{}
	}
	return ps
}
