package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Solid       = donburi.NewTag().SetName("Solid")
	Step        = donburi.NewTag().SetName("Step")
	Collectible = donburi.NewTag().SetName("Collectible")
)
