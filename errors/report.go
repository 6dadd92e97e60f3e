package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const ExitFailure = 1

// ResourceOwner releases everything the interpreter allocated.
// Release is assumed to always succeed.
type ResourceOwner interface{ Release() }

// Reporter is the interpreter's only failure path.
type Reporter struct {
	Out   io.Writer
	Owner ResourceOwner
	Exit  func(code int)
}

func NewReporter(owner ResourceOwner) *Reporter {
	return &Reporter{Out: os.Stderr, Owner: owner, Exit: os.Exit}
}

// Report writes the diagnostic for f, releases the owner's resources, then
// exits with ExitFailure. It never returns.
func (r *Reporter) Report(f Fatal) {
	// Write errors on the diagnostic stream are not recoverable here.
	_, _ = fmt.Fprintln(r.Out, f.Error())
	logrus.WithField("family", f.Family()).Debugln("fatal error reported")

	r.Owner.Release()
	r.Exit(ExitFailure)
	panic(Unreachable)
}
