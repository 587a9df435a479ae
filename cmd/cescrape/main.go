package main

import (
	"cescrape/cmd/cescrape/commands"
	"cescrape/lib/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext()
	commands.ExecuteContext(ctx)
}
