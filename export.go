package polynest

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ExportOptions controls offline rendering and encoding.
type ExportOptions struct {
	// Out selects the destination and format: *.gif for an animated GIF,
	// a video extension (*.mp4, *.mkv, *.webm) for ffmpeg muxing, anything
	// else is treated as a directory for a PNG sequence.
	Out string

	// Width and Height are the frame size in pixels. Default 1600x1600.
	Width, Height int

	// DelayMS is the inter-frame delay for GIF output. Default 20.
	DelayMS int

	// FPS is the playback frame rate for video output. Default 30.
	FPS int

	// Workers caps the parallel render workers. Default NumCPU.
	Workers int

	// Logger receives progress output. Nil disables logging.
	Logger *zap.Logger
}

func (o *ExportOptions) applyDefaults() {
	if o.Width <= 0 {
		o.Width = 1600
	}
	if o.Height <= 0 {
		o.Height = 1600
	}
	if o.DelayMS <= 0 {
		o.DelayMS = 20
	}
	if o.FPS <= 0 {
		o.FPS = 30
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Export renders every frame of the animation and encodes the result.
//
// Frame geometry is a pure function of the frame index, so frames are
// rendered on a worker pool in whatever order the workers reach them and
// written into an index-ordered slice; only the final encode is sequential.
func Export(cfg Config, opts ExportOptions) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.Out == "" {
		return fmt.Errorf("export: no output path")
	}
	opts.applyDefaults()

	log := opts.Logger
	log.Info("rendering frames",
		zap.Int("frames", cfg.Frames),
		zap.Int("sides", cfg.Sides),
		zap.Int("workers", opts.Workers),
		zap.String("out", opts.Out),
	)

	frames := renderFrames(cfg, opts)

	switch strings.ToLower(filepath.Ext(opts.Out)) {
	case ".gif":
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := EncodeGIF(f, frames, opts.DelayMS); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	case ".mp4", ".mkv", ".webm", ".mov", ".avi":
		if err := EncodeVideo(opts.Out, frames, opts.FPS); err != nil {
			return err
		}
	default:
		if err := WritePNGSequence(opts.Out, frames); err != nil {
			return err
		}
	}

	log.Info("export complete", zap.String("out", opts.Out))
	return nil
}

// renderFrames rasterizes all frames in parallel, collecting results by
// frame index. Each frame gets a fresh canvas because its backing image is
// retained for encoding.
func renderFrames(cfg Config, opts ExportOptions) []*image.NRGBA {
	frames := make([]*image.NRGBA, cfg.Frames)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for frame := range jobs {
				canvas := NewCanvas(opts.Width, opts.Height)
				canvas.RenderFrame(BuildFrame(frame, cfg), cfg)
				frames[frame] = canvas.Image()
			}
		}()
	}

	for frame := 0; frame < cfg.Frames; frame++ {
		jobs <- frame
	}
	close(jobs)
	wg.Wait()

	return frames
}
