/*
Copyright 2023 eatmoreapple

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command sqlmapctl loads a mapper file, evaluates one statement against
// a JSON parameter environment, and prints the rendered SQL and its
// positional bindings. It is a debugging aid, not a server: the engine
// it drives is otherwise consumed as a library.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
)

var version = "0.1.0"

func main() {
	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, os.Kill)
	defer stop()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	exitCode := 0
	cli := setupCLI(ctx, version)
	if err := cli.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}
