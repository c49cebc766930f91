package main

import (
	"flag"
	"fmt"
	"os"

	"fortuned/internal/di"
	"fortuned/internal/structures"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to the config file")
	debugMode := flag.Bool("d", false, "enable debug output")
	flag.Parse()

	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debugMode,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fortuned: %s\n", err)
		os.Exit(1)
	}
}
