package main

import (
	"context"
	"os"

	"slugmenu-backend/cmd/slugmenu-cli/commands"
	"slugmenu-backend/lib/serviceutil"
	"slugmenu-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	err := telemetry.SetupFromEnv(ctx, "slugmenu-cli")
	if err != nil && !os.IsNotExist(err) {
		panic(err)
	}
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
