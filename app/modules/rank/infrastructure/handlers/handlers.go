// Package rankhandlers connects the rank module's event topics to its
// application service.
package rankhandlers

import (
	rankservice "github.com/osu-rank-club/rankbot/app/modules/rank/application"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
	"github.com/osu-rank-club/rankbot/app/shared/results"
)

// RankHandlers implements the Handlers interface for rank events.
type RankHandlers struct {
	service rankservice.Service
}

// NewRankHandlers creates a new RankHandlers instance.
func NewRankHandlers(service rankservice.Service) *RankHandlers {
	return &RankHandlers{service: service}
}

func mapOperationResult(result results.OperationResult, successTopic, failureTopic string) []handlerwrapper.Result {
	return handlerwrapper.FromOperationResult(result, successTopic, failureTopic)
}
