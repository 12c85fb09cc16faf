// Command polynest animates nested regular polygons.
//
// Each frame nests rotated copies of a regular polygon until the radius
// underflows, then the whole stack is exported as an animated GIF, a video
// (via ffmpeg), or a PNG frame sequence. With -preview the animation plays in
// a window instead.
//
//	polynest -sides 6 -out spiral.gif
//	polynest -sides 4 -frames 200 -colors C2,C3 -preview
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ajgray/polynest"
	"github.com/ajgray/polynest/internal/config"
	"github.com/ajgray/polynest/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "polynest: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "polynest: init logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	anim, err := cfg.ToAnimation()
	if err != nil {
		return err
	}

	if cfg.Output.Preview {
		logger.Info("starting preview",
			zap.Int("sides", anim.Sides),
			zap.Int("frames", anim.Frames),
		)
		player, err := polynest.NewPlayer(anim, polynest.PlayerConfig{
			Width:   cfg.Output.Width,
			Height:  cfg.Output.Height,
			DelayMS: cfg.Output.DelayMS,
		})
		if err != nil {
			return err
		}
		return player.Run()
	}

	return polynest.Export(anim, polynest.ExportOptions{
		Out:     cfg.Output.File,
		Width:   cfg.Output.Width,
		Height:  cfg.Output.Height,
		DelayMS: cfg.Output.DelayMS,
		FPS:     cfg.Output.FPS,
		Workers: cfg.Output.Workers,
		Logger:  logger.Log,
	})
}
