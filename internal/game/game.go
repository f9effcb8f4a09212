package game

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"chosenoffset.com/hatchling/internal/effects"
	"chosenoffset.com/hatchling/internal/render"
	"chosenoffset.com/hatchling/internal/session"
	"chosenoffset.com/hatchling/internal/stability"
	"chosenoffset.com/hatchling/internal/transition"
	"chosenoffset.com/hatchling/internal/ui/hud"
	"chosenoffset.com/hatchling/internal/upgrade"
)

// CreatureScale is how much the sprite is enlarged on screen.
const CreatureScale = 2.5

// Options configure a new Game.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	Input        render.InputManager
	Session      *session.Session
	View         *View
	Sprites      *SpriteSet
	Glitch       effects.GlitchSettings
	Clock        transition.Clock
	Random       stability.Random // glitch jitter
	Logger       *slog.Logger
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Session      *session.Session
	View         *View
	Sprites      *SpriteSet
	GameHUD      *hud.HUD
	Glitch       *effects.Glitch

	clock   transition.Clock
	random  stability.Random
	logger  *slog.Logger
	started time.Time
}

// New creates a game around a session. The session must report to opts.View.
func New(opts Options) *Game {
	clock := opts.Clock
	if clock == nil {
		clock = transition.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := clock.Now()
	return &Game{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		Session:      opts.Session,
		View:         opts.View,
		Sprites:      opts.Sprites,
		GameHUD:      hud.New(opts.Renderer, opts.ScreenWidth, opts.ScreenHeight),
		Glitch:       effects.NewGlitch(opts.Glitch, now),
		clock:        clock,
		random:       opts.Random,
		logger:       logger,
		started:      now,
	}
}

// Update handles input and advances playback.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.logger.Info("quit requested")
		return render.ErrTerminate
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Reset()
	}

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.Session.RegisterClick()
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.handleClick(g.InputMgr.GetCursorPosition())
	}

	g.Session.Tick()
	return nil
}

// Layout implements render.Game. The logical screen follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth, g.ScreenHeight = outsideWidth, outsideHeight
		g.GameHUD.SetScreenSize(outsideWidth, outsideHeight)
	}
	return g.ScreenWidth, g.ScreenHeight
}

// Reset starts a new play-through.
func (g *Game) Reset() {
	g.View.Reset()
	g.Session.Reset()
	g.Glitch.Restart(g.clock.Now())
}

func (g *Game) handleClick(x, y int) {
	if idx, ok := g.GameHUD.ButtonAt(g.upgradeButtons(), x, y); ok {
		if err := g.Session.PurchaseUpgrade(idx); err != nil {
			level := slog.LevelWarn
			if errors.Is(err, upgrade.ErrInsufficientClicks) {
				level = slog.LevelInfo
			}
			g.logger.Log(context.Background(), level, "upgrade not purchased",
				slog.Int("upgrade", idx),
				slog.Any("error", err))
		}
		return
	}

	if image.Pt(x, y).In(g.creatureRect()) {
		g.Session.RegisterClick()
	}
}

// upgradeButtons lists the upgrades currently on offer.
func (g *Game) upgradeButtons() []hud.UpgradeButton {
	if g.View.GameOver() {
		return nil
	}
	ledger := g.Session.Ledger()
	clicks := g.Session.Clicks()

	var buttons []hud.UpgradeButton
	for i := 0; i < ledger.Len(); i++ {
		if !ledger.Available(i, clicks) {
			continue
		}
		u, _ := ledger.Upgrade(i)
		buttons = append(buttons, hud.UpgradeButton{
			Index:      i,
			Cost:       u.Cost,
			Multiplier: u.Multiplier,
			Affordable: clicks >= u.Cost,
		})
	}
	return buttons
}

// creatureRect is the clickable area of the creature, centred on screen.
func (g *Game) creatureRect() image.Rectangle {
	w, h := g.spriteSize()
	cx, cy := g.ScreenWidth/2, g.ScreenHeight/2
	return image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}

func (g *Game) spriteSize() (int, int) {
	if img, ok := g.Sprites.Image(g.View.Frame()); ok {
		w, h := img.Size()
		return int(float64(w) * CreatureScale), int(float64(h) * CreatureScale)
	}
	return 0, 0
}

// hudState gathers what the HUD needs this frame.
func (g *Game) hudState() hud.State {
	snap := g.Session.Snapshot()
	return hud.State{
		Clicks:     snap.Clicks,
		Multiplier: snap.Multiplier,
		Stability:  g.View.Stability(),
		Stage:      snap.Stage,
		GameOver:   g.View.GameOver(),
		Upgrades:   g.upgradeButtons(),
	}
}
