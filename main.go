// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/mjreyes/flashlearn/internal/cmd"
	"github.com/mjreyes/flashlearn/internal/config"
)

func main() {
	// A .env in the working directory is optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flashlearn: failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewApp(cfg, afero.NewOsFs())
	if err := cmd.NewRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
