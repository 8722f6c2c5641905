package main

import (
	"image"
	"log"

	"github.com/automoto/elysium/config"
	"github.com/automoto/elysium/fonts"
	"github.com/automoto/elysium/scenes"
	"github.com/automoto/elysium/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.exitScene()
	g.scene = scene.(Scene)
}

// exitScene releases the current scene's resources.
func (g *Game) exitScene() {
	if old, ok := g.scene.(interface{ Exit() }); ok {
		old.Exit()
	}
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	systems.ApplyStartupSettings()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Elysium")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	if err := run(NewGame(), ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// run drives the game loop and always exits the last scene, so its ledger is
// closed even when the loop fails.
func run(g *Game, runGame func(ebiten.Game) error) error {
	defer g.exitScene()
	return runGame(g)
}
