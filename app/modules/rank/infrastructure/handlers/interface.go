package rankhandlers

import (
	"context"

	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// Handlers is the interface the rank router registers against.
type Handlers interface {
	HandleSubmissionRequested(ctx context.Context, payload *rankevents.SubmissionRequestedPayload) ([]handlerwrapper.Result, error)
	HandleWhatIfRequested(ctx context.Context, payload *rankevents.WhatIfRequestedPayload) ([]handlerwrapper.Result, error)
}
