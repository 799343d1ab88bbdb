// Package playerhandlers connects the player module's event topics to its
// application service.
package playerhandlers

import (
	playerservice "github.com/osu-rank-club/rankbot/app/modules/player/application"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
	"github.com/osu-rank-club/rankbot/app/shared/results"
)

// PlayerHandlers implements the Handlers interface for player events.
type PlayerHandlers struct {
	service playerservice.Service
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(service playerservice.Service) *PlayerHandlers {
	return &PlayerHandlers{service: service}
}

// respond maps a service outcome to outgoing events. An error carrying a
// failure payload is answered and acked; a bare error propagates so the
// message is redelivered.
func respond(result results.OperationResult, err error, successTopic, failureTopic string) ([]handlerwrapper.Result, error) {
	if err != nil && result.Failure == nil {
		return nil, err
	}
	return handlerwrapper.FromOperationResult(result, successTopic, failureTopic), nil
}
