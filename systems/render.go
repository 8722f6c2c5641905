package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/elysium/combat"
	"github.com/automoto/elysium/components"
	cfg "github.com/automoto/elysium/config"
	"github.com/automoto/elysium/fonts"
	"github.com/automoto/elysium/physics"
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/automoto/elysium/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// view maps world X/Z onto the screen around the camera's look-at point.
type view struct {
	centerX, centerY float64
	lookAt           gamemath.Vec3
	scale            float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) view {
	v := view{
		centerX: float64(screen.Bounds().Dx()) / 2,
		centerY: float64(screen.Bounds().Dy()) / 2,
		scale:   cfg.C.Scale,
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		v.lookAt = components.Camera.Get(cameraEntry).LookAt
	}
	return v
}

func (v view) project(x, z float64) (float32, float32) {
	return float32(v.centerX + (x-v.lookAt.X)*v.scale), float32(v.centerY + (z-v.lookAt.Z)*v.scale)
}

// DrawArena renders a top-down view of the arena: solids shaded by height,
// collectibles, and both actors with their facing.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Floor)
	v := newView(e, screen)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		x, y := v.project(obj.X, obj.Y)
		top := 0.0
		if s, ok := obj.Data.(*physics.Surface); ok {
			top = s.Top
		}
		vector.DrawFilledRect(screen, x, y, float32(obj.W*v.scale), float32(obj.H*v.scale), heightShade(top), false)
	})

	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		x, y := v.project(c.Position.X, c.Position.Z)
		clr := cfg.Yellow
		if c.Pending {
			clr = cfg.Orange
		}
		size := float32(0.6 * v.scale)
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, clr, false)
	})

	if enemy, ok := tags.Enemy.First(e.World); ok {
		body := components.Body.Get(enemy)
		drawActor(screen, v, &body.Body, cfg.Red, gamemath.NewVec3(math.Sin(body.Yaw), 0, math.Cos(body.Yaw)))
		x, y := v.project(body.Position.X, body.Position.Z)
		vector.StrokeCircle(screen, x, y, float32(components.Enemy.Get(enemy).AttackRange*v.scale), 1, cfg.Grey, false)
	}
	if player, ok := tags.Player.First(e.World); ok {
		body := components.Body.Get(player)
		drawActor(screen, v, &body.Body, cfg.Blue, gamemath.Forward(body.Yaw))
	}
}

func drawActor(screen *ebiten.Image, v view, b *physics.Body, clr color.Color, facing gamemath.Vec3) {
	x, y := v.project(b.Position.X, b.Position.Z)
	r := float32(math.Max(b.Radius*v.scale, 2))
	vector.DrawFilledCircle(screen, x, y, r, clr, true)
	tipX, tipY := v.project(b.Position.X+facing.X*b.Radius*3, b.Position.Z+facing.Z*b.Radius*3)
	vector.StrokeLine(screen, x, y, tipX, tipY, 2, cfg.White, true)
}

// heightShade brightens taller blocks.
func heightShade(top float64) color.RGBA {
	t := gamemath.ClampFloat(top/cfg.Physics.SolidHeight, 0, 1)
	c := uint8(70 + 120*t)
	return color.RGBA{R: c, G: c, B: c + 20, A: 255}
}

// DrawHUD renders the encounter status in the top-left corner.
func DrawHUD(state *combat.State) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Regular.Get()
		y := hudMargin + 12

		text.Draw(screen, "Turn: "+TurnLabel(state), face, hudMargin, y, cfg.White)
		y += 16

		if player, ok := tags.Player.First(e.World); ok {
			p := components.Player.Get(player)
			text.Draw(screen, fmt.Sprintf("Items: %d", p.Collected), face, hudMargin, y, cfg.LightGreen)
			y += 16
			if CanPlayerAttack(state) {
				method := components.InputKeyboard
				if player.HasComponent(components.Input) {
					method = components.Input.Get(player).LastInputMethod
				}
				text.Draw(screen, AttackPrompt(method), face, hudMargin, y, cfg.Yellow)
				y += 16
			}
		}

		if levelEntry, ok := components.Level.First(e.World); ok {
			level := components.Level.Get(levelEntry)
			for _, line := range ObjectiveLines(level) {
				text.Draw(screen, line, face, hudMargin, y, cfg.White)
				y += 16
			}
			if level.Complete {
				text.Draw(screen, "Level complete", face, hudMargin, y, cfg.LightGreen)
			}
		}
	}
}

// AttackPrompt names the attack buttons of the device the player used last.
func AttackPrompt(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Your turn: X / Y to attack"
	}
	return "Your turn: J / K to attack"
}

// TurnLabel is the HUD text for the encounter state.
func TurnLabel(state *combat.State) string {
	if !state.Active() {
		return "exploring"
	}
	switch state.CurrentTurn {
	case combat.TurnEnemy:
		return "enemy attacking"
	case combat.TurnPlayer:
		if state.PlayerWaitingForInput {
			return "player (waiting for input)"
		}
		return "player attacking"
	}
	return state.CurrentTurn.String()
}

// CanPlayerAttack reports whether an attack press would be accepted now.
func CanPlayerAttack(state *combat.State) bool {
	return combat.CanAttack(state, combat.TurnPlayer) && state.PlayerWaitingForInput
}

// DrawDebug renders kinematic state and collision footprints when the debug
// overlay is enabled.
func DrawDebug(state *combat.State) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Enabled {
			return
		}
		v := newView(e, screen)
		face := fonts.Small.Get()

		if spaceEntry, ok := components.Space.First(e.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Solids() {
				x, y := v.project(obj.X, obj.Y)
				clr := cfg.LightGrey
				if obj.HasTags(physics.TagStep) {
					clr = cfg.Yellow
				}
				vector.StrokeRect(screen, x, y, float32(obj.W*v.scale), float32(obj.H*v.scale), 1, clr, false)
			}
		}
		components.Body.Each(e.World, func(entry *donburi.Entry) {
			fp := components.Body.Get(entry).Footprint
			if fp == nil {
				return
			}
			x, y := v.project(fp.X, fp.Y)
			vector.StrokeRect(screen, x, y, float32(fp.W*v.scale), float32(fp.H*v.scale), 1, cfg.LightGreen, false)
		})

		y := screen.Bounds().Dy() - 40
		if player, ok := tags.Player.First(e.World); ok {
			body := components.Body.Get(player)
			kin := components.Kinematic.Get(player)
			line := fmt.Sprintf("pos %.2f %.2f %.2f  vel %.2f %.2f %.2f  grounded %v  cast %v/%.2f",
				body.Position.X, body.Position.Y, body.Position.Z,
				body.Velocity.X, body.Velocity.Y, body.Velocity.Z,
				kin.IsGrounded, kin.Ground.Hit, kin.Ground.Distance)
			text.Draw(screen, line, face, hudMargin, y, cfg.White)
		}
		line := fmt.Sprintf("turn %s  in_range %v  waiting %v  timer %.2f",
			state.CurrentTurn, state.InRange, state.PlayerWaitingForInput, state.EnemyTurnRemaining())
		text.Draw(screen, line, face, hudMargin, y+14, cfg.White)
	}
}
