// Package run executes external tools on behalf of the CLI.
package run

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CmdError reports a failed tool invocation, carrying the argv that was run
// and the tool's stderr.
type CmdError struct {
	Args   string
	Stderr string
	Cause  error
}

func (e *CmdError) Error() string {
	res := fmt.Sprintf("`%v` failed: %v", e.Args, e.Cause)
	if e.Stderr != "" {
		res = fmt.Sprintf("%s: %s", res, e.Stderr)
	}

	return res
}

func (e *CmdError) Unwrap() error {
	return e.Cause
}

// Opts configures a single invocation.
type Opts struct {
	// Timeout bounds the invocation; zero means no timeout. On expiry the
	// process is killed and the invocation fails.
	Timeout time.Duration
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env is appended to the current process environment.
	Env []string
	// Stream receives the tool's combined output as it is produced, in
	// addition to being captured for error reporting.
	Stream io.Writer
}

// Command runs argv[0] with the remaining arguments and returns its combined
// output. Failures are reported as a [*CmdError]; the command is never
// retried.
func Command(ctx context.Context, opts Opts, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("empty argv")
	}

	execID, err := randString(5)
	if err != nil {
		return "", fmt.Errorf("generate exec id: %w", err)
	}

	logCtx := slog.With("execID", execID)

	if opts.Timeout != 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	cmd.Env = append(os.Environ(), opts.Env...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Stream != nil {
		cmd.Stdout = io.MultiWriter(&stdout, opts.Stream)
		cmd.Stderr = io.MultiWriter(&stderr, opts.Stream)
	}

	// Log in a form that can be copied into a terminal.
	args := strings.Join(argv, " ")
	logCtx.Info(args, "dir", cmd.Dir)

	start := time.Now()

	err = cmd.Run()

	logCtx.Debug("command finished", "duration", time.Since(start))

	if err != nil {
		cause := err
		if ctxErr := ctx.Err(); ctxErr != nil {
			cause = fmt.Errorf("%w: %w", ctxErr, err)
		}

		cmdErr := &CmdError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Cause:  cause,
		}
		logCtx.Error(cmdErr.Error())

		return strings.TrimSuffix(stdout.String(), "\n"), cmdErr
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// randString returns a pseudo-random alpha-numeric string of a given length.
func randString(n int) (string, error) {
	b := make([]byte, n/2+1)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(b)[0:n], nil
}
