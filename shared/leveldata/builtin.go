package leveldata

// Builtin is the arena used when no TMX file can be loaded: a walled square
// with a short staircase and a raised platform.
func Builtin() *Layout {
	const size = 128.0
	return &Layout{
		Name:        "builtin",
		Width:       size,
		Depth:       size,
		PlayerSpawn: Point{X: 40, Z: 90},
		EnemySpawn:  Point{X: 40, Z: 40},
		Solids: []Block{
			{X: 0, Z: 0, W: size, D: 2, Top: DefaultSolidHeight},
			{X: 0, Z: size - 2, W: size, D: 2, Top: DefaultSolidHeight},
			{X: 0, Z: 2, W: 2, D: size - 4, Top: DefaultSolidHeight},
			{X: size - 2, Z: 2, W: 2, D: size - 4, Top: DefaultSolidHeight},
			{X: 60, Z: 60, W: 8, D: 8, Top: DefaultSolidHeight},
		},
		Steps: []Block{
			{X: 90, Z: 70, W: 6, D: 2, Top: 0.3},
			{X: 90, Z: 72, W: 6, D: 2, Top: 0.6},
			{X: 90, Z: 74, W: 6, D: 2, Top: 0.9},
			{X: 90, Z: 76, W: 6, D: 8, Top: 1.2},
		},
		Collectibles: []CollectibleSpawn{
			{Point: Point{X: 20, Y: 1, Z: 100}, Kind: "coin", ItemID: "coin-1"},
			{Point: Point{X: 93, Y: 2.2, Z: 80}, Kind: "mystery_box", ItemID: "mystery_box-1"},
			{Point: Point{X: 100, Y: 1, Z: 20}, Kind: "health_potion", ItemID: "health_potion-1"},
		},
	}
}
