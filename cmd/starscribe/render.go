package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/starscribe/internal/config"
	"github.com/lox/starscribe/internal/handfile"
	"github.com/lox/starscribe/internal/histwriter"
	"github.com/lox/starscribe/internal/stars"
)

// RenderCmd renders one or more hand model files.
type RenderCmd struct {
	Files   []string `arg:"" name:"file" help:"Hand model TOML files" type:"existingfile"`
	Config  string   `help:"Path to HCL config file" default:"starscribe.hcl"`
	OutDir  string   `help:"Directory for hand_<id>.txt files (overrides config)"`
	Stdout  bool     `help:"Write reports to stdout instead of files"`
	Summary bool     `help:"Append the SUMMARY section (hands must carry pot data)"`
	Debug   bool     `help:"Enable debug logging"`
}

func (cmd RenderCmd) Run() error {
	logger := setupLogger(cmd.Debug)

	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}

	outDir := cfg.Output.Dir
	if cmd.OutDir != "" {
		outDir = cmd.OutDir
	}

	clock := stars.Clock{
		HouseZone:    time.FixedZone(cfg.Clock.Abbrev, cfg.Clock.UTCOffsetHours*60*60),
		HouseAbbrev:  cfg.Clock.Abbrev,
		OffsetAbbrev: cfg.Clock.OffsetAbbrev,
	}
	renderer := stars.NewRenderer(clock, stars.Options{
		IncludeSummary: cmd.Summary || cfg.Output.Summary,
	})

	if cmd.Stdout {
		// Sequential so reports keep file order on the terminal.
		writer := histwriter.NewStreamWriter(os.Stdout)
		for _, path := range cmd.Files {
			if err := renderFile(renderer, path, writer); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	}

	writer := histwriter.NewFileWriter(outDir)

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for _, path := range cmd.Files {
		path := path
		g.Go(func() error {
			if err := renderFile(renderer, path, writer); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug().Str("file", path).Msg("rendered")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().Int("files", len(cmd.Files)).Str("out_dir", outDir).Msg("render complete")
	return nil
}

func renderFile(renderer *stars.Renderer, path string, sink histwriter.Writer) error {
	hands, err := handfile.Load(path)
	if err != nil {
		return err
	}

	for i := range hands {
		out, err := renderer.Render(&hands[i])
		if err != nil {
			return fmt.Errorf("hand #%d: %w", hands[i].ID, err)
		}
		if err := sink.WriteHandHistory(strconv.FormatUint(hands[i].ID, 10), out); err != nil {
			return err
		}
	}
	return nil
}
