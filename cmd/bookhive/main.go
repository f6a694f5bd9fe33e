// Command bookhive is the operator binary: it serves the health and admin
// surface and runs migrations, schema checks and maintenance tasks.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bookhive/bookhive-backend/internal/cli"
)

func main() {
	err := cli.NewRootCommand().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
