package errors

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/dymensionxyz/tonshard/types"
)

// ErrGroupGoLog runs fn in the group and logs its error. Cancellation is expected when a sibling wins or
// the caller gives up, so it is not logged.
func ErrGroupGoLog(eg *errgroup.Group, logger types.Logger, fn func() error) {
	eg.Go(func() error {
		err := fn()
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("ErrGroup goroutine.", "err", err)
		}
		return err
	})
}
