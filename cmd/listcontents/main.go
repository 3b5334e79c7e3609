package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"listcontents/internal/app"
	"listcontents/internal/config"
)

func main() {
	cfg, err := config.Parse("listcontents", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "listcontents: %v\n", err)
		os.Exit(2)
	}

	application := app.New(cfg)
	code := application.Run()

	// Close the output file if one was opened.
	if cfg.OutputFile != "" {
		if f, ok := application.Output.(*os.File); ok {
			f.Close()
		}
	}

	os.Exit(code)
}
