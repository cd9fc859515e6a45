package main

import (
	"github.com/tmcf/droidctl/cmd"

	// Register the adb device backend.
	_ "github.com/tmcf/droidctl/internal/platform/adb"
)

func main() {
	cmd.Execute()
}
