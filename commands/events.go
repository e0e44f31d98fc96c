package commands

import (
	"context"
	"fmt"

	"github.com/mobile-next/mobileinput/types"
)

// EventView is the wire form of a logical event: the numeric kind, its name
// and the raw arguments.
type EventView struct {
	Kind int    `json:"kind"`
	Name string `json:"name"`
	Args [6]int `json:"args"`
}

func NewEventView(ev types.LogicalEvent) EventView {
	return EventView{
		Kind: int(ev.Kind),
		Name: ev.Kind.String(),
		Args: ev.Args,
	}
}

func eventViews(evs []types.LogicalEvent) []EventView {
	views := make([]EventView, 0, len(evs))
	for _, ev := range evs {
		views = append(views, NewEventView(ev))
	}
	return views
}

// DrainCommand returns and clears the session's pending events
func DrainCommand(req SessionRequest) *CommandResponse {
	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"events": eventViews(s.Drain()),
	})
}

// QuitCommand pushes the quit event to a session
func QuitCommand(ctx context.Context, req SessionRequest) *CommandResponse {
	s, err := FindSession(req.SessionID)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := s.Quit(ctx); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to send quit: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Quit sent to session %s", s.ID),
	})
}
