package polynest

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// EncodeGIF writes the frame sequence as an animated GIF with the given
// inter-frame delay in milliseconds. Frames are quantized to the Plan 9
// palette with Floyd-Steinberg dithering. The GIF loops forever.
func EncodeGIF(w io.Writer, frames []*image.NRGBA, delayMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}

	// GIF delays are in 10ms units, minimum one tick.
	delay := delayMS / 10
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		pal := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// WritePNGSequence writes each frame as frame_NNNN.png under dir, creating
// the directory if needed.
func WritePNGSequence(dir string, frames []*image.NRGBA) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("png sequence: mkdir %s: %w", dir, err)
	}
	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, frame); err != nil {
			return fmt.Errorf("png sequence: %w", err)
		}
	}
	return nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// EncodeVideo pipes raw RGBA frames into an ffmpeg child process and muxes
// the result into the container implied by the output path's extension
// (.mp4, .mkv, .webm, ...). fps is the playback frame rate. Requires ffmpeg
// on PATH.
func EncodeVideo(path string, frames []*image.NRGBA, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode video: no frames")
	}
	if fps < 1 {
		fps = 30
	}

	b := frames[0].Bounds()
	cmd := exec.Command("ffmpeg",
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"-r", fmt.Sprintf("%d", fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		path,
	)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("encode video: %w", err)
	}
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("encode video: start ffmpeg: %w", err)
	}

	for i, frame := range frames {
		if frame.Bounds() != b {
			stdin.Close()
			_ = cmd.Wait()
			return fmt.Errorf("encode video: frame %d size differs from frame 0", i)
		}
		if _, err := stdin.Write(frame.Pix); err != nil {
			stdin.Close()
			_ = cmd.Wait()
			return fmt.Errorf("encode video: write frame %d: %w", i, err)
		}
	}
	if err := stdin.Close(); err != nil {
		_ = cmd.Wait()
		return fmt.Errorf("encode video: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("encode video: ffmpeg: %w", err)
	}
	return nil
}
