package eventbus

import (
	"context"
	"fmt"

	guildevents "github.com/osu-rank-club/rankbot/app/modules/guild/domain/events"
	playerevents "github.com/osu-rank-club/rankbot/app/modules/player/domain/events"
	rankevents "github.com/osu-rank-club/rankbot/app/modules/rank/domain/events"
)

// Stream names. One stream per module keeps retention and replay scoped to
// the module that owns the subjects.
const (
	RankStream   = "rank"
	GuildStream  = "guild"
	PlayerStream = "player"
)

var streamSubjects = map[string][]string{
	RankStream: {
		rankevents.TopicSubmissionRequested,
		rankevents.TopicSubmissionSucceeded,
		rankevents.TopicSubmissionFailed,
		rankevents.TopicWhatIfRequested,
		rankevents.TopicWhatIfResult,
		rankevents.TopicWhatIfFailed,
	},
	GuildStream: {
		guildevents.TopicGuildSetupRequested,
		guildevents.TopicGuildSetup,
		guildevents.TopicGuildSetupFailed,
		guildevents.TopicGuildConfigRequested,
		guildevents.TopicGuildConfigRetrieved,
		guildevents.TopicGuildConfigRetrievalFailed,
		guildevents.TopicGuildConfigUpdateRequested,
		guildevents.TopicGuildConfigUpdated,
		guildevents.TopicGuildConfigUpdateFailed,
		guildevents.TopicLadderRequested,
		guildevents.TopicLadderRetrieved,
		guildevents.TopicLadderRoleAddRequested,
		guildevents.TopicLadderRoleAdded,
		guildevents.TopicLadderRoleRemoveRequested,
		guildevents.TopicLadderRoleRemoved,
		guildevents.TopicLadderUpdateFailed,
		guildevents.TopicChannelCheckRequested,
		guildevents.TopicChannelChecked,
		guildevents.TopicChannelCheckFailed,
	},
	PlayerStream: {
		playerevents.TopicPlayerLinkRequested,
		playerevents.TopicPlayerLinked,
		playerevents.TopicPlayerLinkFailed,
		playerevents.TopicPlayerRequested,
		playerevents.TopicPlayerRetrieved,
		playerevents.TopicPlayerRetrievalFailed,
	},
}

// InitializeStreams creates every module stream at startup so publishers
// never race consumers on stream provisioning.
func InitializeStreams(ctx context.Context, bus EventBus) error {
	for _, stream := range []string{RankStream, GuildStream, PlayerStream} {
		if err := bus.CreateStream(ctx, stream); err != nil {
			return fmt.Errorf("initialize stream %s: %w", stream, err)
		}
	}
	return nil
}
