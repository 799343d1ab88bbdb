// Package guildhandlers connects the guild module's event topics to its
// application service.
package guildhandlers

import (
	guildservice "github.com/osu-rank-club/rankbot/app/modules/guild/application"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
	"github.com/osu-rank-club/rankbot/app/shared/results"
)

// GuildHandlers implements the Handlers interface for guild events.
type GuildHandlers struct {
	service guildservice.Service
}

// NewGuildHandlers creates a new GuildHandlers instance.
func NewGuildHandlers(service guildservice.Service) *GuildHandlers {
	return &GuildHandlers{service: service}
}

// respond maps a service outcome to outgoing events. Guild failures are all
// terminal (validation and configuration defects), so an error carrying a
// failure payload is answered and acked; a bare error propagates so the
// message is redelivered.
func respond(result results.OperationResult, err error, successTopic, failureTopic string) ([]handlerwrapper.Result, error) {
	if err != nil && result.Failure == nil {
		return nil, err
	}
	return handlerwrapper.FromOperationResult(result, successTopic, failureTopic), nil
}
