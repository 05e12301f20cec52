package bump

import (
	"fmt"
	"os"
)

// File applies level to the file at path, rewriting it in place. The file's
// permission bits are preserved. On any error, including a missing version
// assignment, the file is left unmodified.
//
// No locking is performed; concurrent invocations against the same file are
// last-writer-wins.
func File(path string, level Level) (Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	out, res, err := Apply(data, level)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	err = os.WriteFile(path, out, fi.Mode().Perm())
	if err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	return res, nil
}

// DryRun computes the bump for the file at path without writing anything.
func DryRun(path string, level Level) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	_, res, err := Apply(data, level)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	return res, nil
}
