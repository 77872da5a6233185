package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/caarlos0/go-version"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-confgen/internal/project"
	"github.com/goliatone/go-confgen/pkg/artifact"
	"github.com/goliatone/go-confgen/pkg/config"
	"github.com/goliatone/go-confgen/pkg/orchestrator"
)

const appName = "confgen"

// Populated at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <extension | template-path>\n", appName)
		os.Exit(1)
	}

	outPath, err := run(context.Background(), os.Args[1])
	if err != nil {
		logger.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
	logger.Info().Str("artifact", outPath).Msg("artifact committed")
}

func run(ctx context.Context, arg string) (string, error) {
	templatePath, err := resolveTemplate(arg)
	if err != nil {
		return "", err
	}
	configPath := filepath.Join(filepath.Dir(templatePath), project.GlobalConfigName)

	gen := orchestrator.New(
		orchestrator.WithReservedNames(config.ReservedFromEnviron()),
		orchestrator.WithCommandLine(strings.Join(os.Args, " ")),
		orchestrator.WithGenerator(generatorString()),
	)

	return gen.Run(ctx, orchestrator.Request{
		Target:   arg,
		Config:   artifact.FromFile(configPath),
		Template: artifact.FromFile(templatePath),
	})
}

// resolveTemplate accepts either a template path or a bare extension; the
// latter is looked up as the single *.template.<ext> in the working
// directory.
func resolveTemplate(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	ext, err := project.Extension(arg)
	if err != nil {
		return "", err
	}
	return project.FindTemplate(".", ext)
}

func generatorString() string {
	info := goversion.GetVersionInfo(func(i *goversion.Info) {
		if version != "" {
			i.GitVersion = version
		}
		if commit != "" {
			i.GitCommit = commit
		}
		if date != "" {
			i.BuildDate = date
		}
	})
	return appName + " " + info.GitVersion
}
