package polynest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PlayerConfig configures the interactive preview window.
type PlayerConfig struct {
	Title         string // window title (default "polynest")
	Width, Height int    // window size in pixels (default 800x800)
	DelayMS       int    // nominal per-frame delay, sets playback speed (default 20)

	// Ease remaps timeline progress. Linear playback by default; any easing
	// function works since the geometry is a pure function of the frame index.
	Ease ease.TweenFunc
}

// Player is the interactive preview: an ebiten game that tweens the timeline
// from the first to the last frame, loops, and renders through the mesh
// Renderer.
type Player struct {
	cfg      Config
	pc       PlayerConfig
	renderer *Renderer
	tween    *gween.Tween
	frame    int
}

// NewPlayer validates the config and prepares a preview player.
func NewPlayer(cfg Config, pc PlayerConfig) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if pc.Title == "" {
		pc.Title = "polynest"
	}
	if pc.Width <= 0 {
		pc.Width = 800
	}
	if pc.Height <= 0 {
		pc.Height = 800
	}
	if pc.DelayMS <= 0 {
		pc.DelayMS = 20
	}
	if pc.Ease == nil {
		pc.Ease = ease.Linear
	}

	duration := float32(cfg.Frames*pc.DelayMS) / 1000
	return &Player{
		cfg:      cfg,
		pc:       pc,
		renderer: NewRenderer(cfg, pc.Width, pc.Height),
		tween:    gween.New(0, float32(cfg.Frames-1), duration, pc.Ease),
		frame:    -1,
	}, nil
}

// Update advances the timeline tween and rebuilds the frame's meshes when the
// frame index changes. Implements ebiten.Game.
func (p *Player) Update() error {
	dt := float32(1) / float32(ebiten.TPS())
	v, finished := p.tween.Update(dt)

	frame := int(v + 0.5)
	if frame < 0 {
		frame = 0
	}
	if frame > p.cfg.Frames-1 {
		frame = p.cfg.Frames - 1
	}
	if frame != p.frame {
		p.frame = frame
		p.renderer.ApplyFrame(BuildFrame(frame, p.cfg))
	}

	if finished {
		p.tween.Reset()
	}
	return nil
}

// Draw renders the current frame. Implements ebiten.Game.
func (p *Player) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen)
}

// Layout reports the fixed logical screen size. Implements ebiten.Game.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.pc.Width, p.pc.Height
}

// Run opens the window and blocks until it is closed.
func (p *Player) Run() error {
	ebiten.SetWindowSize(p.pc.Width, p.pc.Height)
	ebiten.SetWindowTitle(p.pc.Title)
	return ebiten.RunGame(p)
}
