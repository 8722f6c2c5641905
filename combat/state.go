// Package combat arbitrates turns between the player and the enemy while
// they are within attack range of each other.
package combat

// Turn is the owner of the current combat turn.
type Turn int

const (
	TurnEnemy Turn = iota
	TurnPlayer
	TurnOutOfRange
)

func (t Turn) String() string {
	switch t {
	case TurnEnemy:
		return "enemy"
	case TurnPlayer:
		return "player"
	case TurnOutOfRange:
		return "out_of_range"
	}
	return "unknown"
}

// State is the encounter state for one arena. It is owned by the scene and
// passed to the systems that read or advance it.
type State struct {
	CurrentTurn Turn
	InRange     bool

	// EnemyAttackFinished and PlayerAttackFinished are consumed by the
	// transition that ends the turn, so the arbiter never leaves them set
	// between ticks. Every turn change clears them.
	EnemyAttackFinished  bool
	PlayerAttackFinished bool

	PlayerWaitingForInput bool

	enemyTurnLeft    float64 // timer policy countdown
	playerAttackSeen bool
}

// NewState returns the state an encounter starts in.
func NewState() *State {
	return &State{CurrentTurn: TurnEnemy}
}

// Reset returns the state to its defaults, used when the scene exits.
func (s *State) Reset() {
	*s = State{CurrentTurn: TurnEnemy}
}

// Active reports whether a turn-based encounter is in progress.
func (s *State) Active() bool {
	return s != nil && s.InRange && s.CurrentTurn != TurnOutOfRange
}

// EnemyTurnRemaining is the timer policy countdown.
func (s *State) EnemyTurnRemaining() float64 {
	return s.enemyTurnLeft
}

// CanAttack reports whether the actor owning turn may start an attack now.
func CanAttack(s *State, turn Turn) bool {
	return s != nil && s.InRange && s.CurrentTurn == turn
}

func (s *State) clearFlags() {
	s.EnemyAttackFinished = false
	s.PlayerAttackFinished = false
	s.playerAttackSeen = false
}

func (s *State) enterEnemyTurn(duration float64) {
	s.CurrentTurn = TurnEnemy
	s.clearFlags()
	s.PlayerWaitingForInput = false
	s.enemyTurnLeft = duration
}

func (s *State) enterPlayerTurn() {
	s.CurrentTurn = TurnPlayer
	s.clearFlags()
	s.PlayerWaitingForInput = true
	s.enemyTurnLeft = 0
}

func (s *State) leaveRange() {
	s.CurrentTurn = TurnOutOfRange
	s.clearFlags()
	s.PlayerWaitingForInput = false
	s.enemyTurnLeft = 0
}
