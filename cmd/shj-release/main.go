// Command shj-release generates the changelog, marketplace posts, release
// notes and add-on catalogue of a SmartHome/J release.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/smarthomej/release-tools/internal/adapters/driving/cli"
	"github.com/smarthomej/release-tools/internal/logger"
)

// version is set by the linker: -ldflags "-X main.version=1.2.3".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildReleaseService)

	err := cli.Execute(ctx)
	if err != nil {
		logger.Error("%v", err)
	}

	stop()
	os.Exit(cli.ExitCode(err))
}
