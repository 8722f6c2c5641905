package config

// ClipDef describes one clip on an actor's animation player.
type ClipDef struct {
	Seconds float64
	Loop    bool
}

// PlayerAnimationSet lists the player model's clip indices.
type PlayerAnimationSet struct {
	InitialIdle int
	Idle        int
	Run         int
	Walk        int
	Attack1     int
	Attack2     int
}

// EnemyAnimationSet lists the enemy model's clip indices.
type EnemyAnimationSet struct {
	Idle   int
	Run    int
	Walk   int
	Attack int
}

var PlayerAnim PlayerAnimationSet
var EnemyAnim EnemyAnimationSet

// CharacterClips maps a character key to its clip table.
var CharacterClips map[string]map[int]ClipDef

func init() {
	PlayerAnim = PlayerAnimationSet{
		InitialIdle: 2,
		Idle:        3,
		Run:         4,
		Walk:        7,
		Attack1:     5,
		Attack2:     6,
	}

	EnemyAnim = EnemyAnimationSet{
		Idle:   1,
		Run:    4,
		Walk:   7,
		Attack: 3,
	}

	CharacterClips = map[string]map[int]ClipDef{
		"player": {
			PlayerAnim.InitialIdle: {Seconds: 2.0, Loop: true},
			PlayerAnim.Idle:        {Seconds: 2.0, Loop: true},
			PlayerAnim.Run:         {Seconds: 0.7, Loop: true},
			PlayerAnim.Walk:        {Seconds: 1.0, Loop: true},
			PlayerAnim.Attack1:     {Seconds: 0.8},
			PlayerAnim.Attack2:     {Seconds: 1.1},
		},
		"enemy": {
			EnemyAnim.Idle:   {Seconds: 2.0, Loop: true},
			EnemyAnim.Run:    {Seconds: 0.7, Loop: true},
			EnemyAnim.Walk:   {Seconds: 1.0, Loop: true},
			EnemyAnim.Attack: {Seconds: 1.0},
		},
	}
}
