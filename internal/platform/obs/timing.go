package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time logs an operation's duration (and error, if any) through the
// request-scoped logger when the deferred func runs:
//
//	defer obs.Time(ctx, "ors.GetRoute")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	log := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error().Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		log.Debug().Str("op", name).Dur("dur", dur).Msg("operation complete")
	}
}
