package events

import "inspectbook/internal/domain"

type StateEvent struct {
	Type  string          `json:"type"`
	State domain.AppState `json:"state"`
}

func NewStateEvent(state domain.AppState) StateEvent {
	return StateEvent{Type: "state", State: state}
}

type PongEvent struct {
	Type string `json:"type"`
}

func NewPongEvent() PongEvent {
	return PongEvent{Type: "pong"}
}
