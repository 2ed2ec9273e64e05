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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/binaek/cling"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sqlmap-go/sqlmap/dialect"
	"github.com/sqlmap-go/sqlmap/env"
	"github.com/sqlmap-go/sqlmap/registry"
)

func setupCLI(ctx context.Context, version string) *cling.CLI {
	cli := cling.NewCLI("sqlmapctl", version).
		WithDescription("Evaluates mapper statements against a JSON environment").
		WithPreRun(func(ctx context.Context, args []string) error {
			slog.DebugContext(ctx, "==> starting sqlmapctl", slog.String("version", version))
			return nil
		}).
		WithPostRun(func(ctx context.Context, args []string) error {
			slog.DebugContext(ctx, "==> exiting sqlmapctl")
			return nil
		})

	addEvalCmd(cli)
	return cli
}

type evalCmdArgs struct {
	StatementID string `cling-name:"statement-id"`
	MapperFile  string `cling-name:"mapper-file"`
	MapperDir   string `cling-name:"mapper-dir"`
	Namespace   string `cling-name:"namespace"`
	Env         string `cling-name:"env"`
	Dialect     string `cling-name:"dialect"`
}

func addEvalCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("eval", evalCmd).
			WithArgument(cling.NewStringCmdInput("statement-id").
				WithDescription("Namespace-qualified statement id, e.g. user.findByName").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("mapper-file").
				WithDefault("").
				WithDescription("Single mapper XML file to register under --namespace").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("mapper-dir").
				WithDefault("").
				WithDescription("Directory of *.xml mapper files, one namespace per file").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("namespace").
				WithDefault("").
				WithDescription("Namespace to register --mapper-file under").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("env").
				WithDefault("{}").
				WithDescription("JSON object used as the parameter environment").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("dialect").
				WithDefault("mysql").
				WithValidator(cling.NewEnumValidator("mysql", "postgres")).
				WithDescription("Positional marker style to render: mysql or postgres").
				AsFlag(),
			),
	)
}

func evalCmd(ctx context.Context, args []string) error {
	input := evalCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := slog.With(slog.String("run_id", runID))

	if input.MapperFile == "" && input.MapperDir == "" {
		return errors.New("sqlmapctl: one of --mapper-file or --mapper-dir is required")
	}

	reg := registry.New()
	if input.MapperDir != "" {
		if err := loadMapperDir(reg, input.MapperDir); err != nil {
			return err
		}
	}
	if input.MapperFile != "" {
		if input.Namespace == "" {
			return errors.New("sqlmapctl: --namespace is required with --mapper-file")
		}
		if err := loadMapperFile(reg, input.MapperFile, input.Namespace); err != nil {
			return err
		}
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(input.Env), &raw); err != nil {
		return errors.Wrap(err, "sqlmapctl: parsing --env as JSON")
	}
	root := env.FromGo(raw)

	d := dialect.MySQL
	if input.Dialect == "postgres" {
		d = dialect.Postgres
	}

	logger.InfoContext(ctx, "evaluating statement", slog.String("statement_id", input.StatementID))
	sql, bindings, err := reg.EvalStatement(input.StatementID, root, d)
	if err != nil {
		return err
	}

	fmt.Println(sql)
	fmt.Println(bindings)
	return nil
}
