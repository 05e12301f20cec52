package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/wisefood/relkit/internal/cli"
)

const (
	cmdName = "relkit"

	shortDesc = "Release automation for the wisefood package."
	longDesc  = `Release automation for the wisefood package.

Relkit wraps the packaging workflow behind one binary: run the test suite,
clean build artifacts, build a distributable package, upload it to the
package registry, and bump the semantic version stored in pyproject.toml.

Commands and the version file location are configurable via relkit.yaml.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
