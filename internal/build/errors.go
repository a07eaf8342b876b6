package build

import (
	"context"

	"git.home.luguber.info/inful/blogbuilder/internal/build/validation"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Sentinel errors for missing build inputs. Returned errors wrap them and are
// matched with errors.Is.
var (
	ErrMissingConfiguration    = validation.ErrMissingConfiguration
	ErrMissingContentDirectory = validation.ErrMissingContentDirectory
	ErrMissingTemplate         = validation.ErrMissingTemplate
)

// checkContext returns a classified runtime error when ctx is done.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return foundationerrors.RuntimeError(err, "build canceled").Build()
	}
	return nil
}

func fileSystemError(message, path string, err error) error {
	return foundationerrors.FileSystemError(err, message).
		WithContext("path", path).
		Build()
}
