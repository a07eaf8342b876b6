package build

import (
	"time"

	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Status represents the outcome of a build or clean run.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusCanceled Status = "canceled"
)

// Result contains the outcome of a build execution.
type Result struct {
	BuildID string
	Status  Status

	// Posts is the number of assembled posts.
	Posts int

	// Artifacts lists every file written, in write order.
	Artifacts []string

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// CleanResult contains the outcome of a clean run.
type CleanResult struct {
	Status Status

	// Removed lists every file deleted.
	Removed []string
}

func statusFor(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case foundationerrors.HasCategory(err, foundationerrors.CategoryRuntime):
		return StatusCanceled
	default:
		return StatusFailed
	}
}
