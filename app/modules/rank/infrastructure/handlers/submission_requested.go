package rankhandlers

import (
	"context"
	"errors"

	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
	"github.com/osu-rank-club/rankbot/app/shared/handlerwrapper"
)

// HandleSubmissionRequested handles the rank.submission.requested event.
// Service errors with a failure payload become failure events; bare errors
// propagate so the message is redelivered.
func (h *RankHandlers) HandleSubmissionRequested(ctx context.Context, payload *rankevents.SubmissionRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ProcessSubmission(ctx, *payload)
	if err != nil {
		if failure, ok := result.Failure.(*rankevents.SubmissionFailedPayload); ok && !failure.Retryable {
			// Terminal failures are answered, not retried.
			return mapOperationResult(result,
				rankevents.TopicSubmissionSucceeded,
				rankevents.TopicSubmissionFailed,
			), nil
		}
		return nil, err
	}

	return mapOperationResult(result,
		rankevents.TopicSubmissionSucceeded,
		rankevents.TopicSubmissionFailed,
	), nil
}
