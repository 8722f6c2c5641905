package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ELYSIUM_"

// overrides mirrors the tunables that may be changed from the environment.
// Fields are pre-filled with the current values so unset variables keep them.
type overrides struct {
	Debug            bool       `env:"DEBUG"`
	SkipPersistence  bool       `env:"SKIP_PERSISTENCE"`
	TurnPolicy       TurnPolicy `env:"TURN_POLICY"`
	EnemyTurnSeconds float64    `env:"ENEMY_TURN_SECONDS"`
	AttackRange      float64    `env:"ATTACK_RANGE"`
	Level            string     `env:"LEVEL"`
	Ledger           string     `env:"LEDGER"`
	Collect          string     `env:"COLLECT_BEHAVIOR"`
}

// ApplyEnv overrides the global configuration from ELYSIUM_* variables.
func ApplyEnv() error {
	o := overrides{
		Debug:            Debug.Enabled,
		SkipPersistence:  Debug.SkipPersistence,
		TurnPolicy:       Combat.TurnPolicy,
		EnemyTurnSeconds: Combat.EnemyTurnSeconds,
		AttackRange:      Combat.AttackRange,
		Level:            C.Level,
		Ledger:           Ledger.Mode,
		Collect:          Collectible.Behavior,
	}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	switch o.TurnPolicy {
	case TurnPolicyAnimation, TurnPolicyTimer:
	default:
		return fmt.Errorf("unknown turn policy %q", o.TurnPolicy)
	}
	switch o.Ledger {
	case "local", "none":
	default:
		return fmt.Errorf("unknown ledger mode %q", o.Ledger)
	}
	switch o.Collect {
	case "immediate", "confirm":
	default:
		return fmt.Errorf("unknown collect behavior %q", o.Collect)
	}
	if o.EnemyTurnSeconds <= 0 {
		return fmt.Errorf("enemy turn seconds must be positive, got %v", o.EnemyTurnSeconds)
	}
	if o.AttackRange <= 0 {
		return fmt.Errorf("attack range must be positive, got %v", o.AttackRange)
	}

	Debug.Enabled = o.Debug
	Debug.SkipPersistence = o.SkipPersistence
	Combat.TurnPolicy = o.TurnPolicy
	Combat.EnemyTurnSeconds = o.EnemyTurnSeconds
	Combat.AttackRange = o.AttackRange
	Enemy.AttackRange = o.AttackRange
	C.Level = o.Level
	Ledger.Mode = o.Ledger
	Collectible.Behavior = o.Collect
	return nil
}
