package components

import (
	"github.com/automoto/elysium/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ItemKind is the closed set of collectible items.
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemBook
	ItemHealthPotion
	ItemSurvivalKit
	ItemMysteryBox

	ItemKindCount
)

var itemNames = [...]string{
	ItemCoin:         "coin",
	ItemBook:         "book",
	ItemHealthPotion: "health_potion",
	ItemSurvivalKit:  "survival_kit",
	ItemMysteryBox:   "mystery_box",
}

func (k ItemKind) String() string {
	if k < 0 || k >= ItemKindCount {
		return "unknown"
	}
	return itemNames[k]
}

// ParseItemKind maps a level property to an ItemKind.
func ParseItemKind(s string) (ItemKind, bool) {
	for i, name := range itemNames {
		if name == s {
			return ItemKind(i), true
		}
	}
	return ItemCoin, false
}

// CollectBehavior selects what happens when the player reaches a collectible.
type CollectBehavior int

const (
	// CollectDespawnImmediately removes the item as soon as it is reached and
	// fires the notification without waiting.
	CollectDespawnImmediately CollectBehavior = iota
	// CollectDespawnOnConfirmation keeps the item until the ledger confirms.
	CollectDespawnOnConfirmation
)

// ParseCollectBehavior maps the config value to a CollectBehavior.
func ParseCollectBehavior(s string) CollectBehavior {
	if s == "immediate" {
		return CollectDespawnImmediately
	}
	return CollectDespawnOnConfirmation
}

type CollectibleData struct {
	Kind     ItemKind
	ItemID   string
	Behavior CollectBehavior
	Position gamemath.Vec3
	Pending  bool // submitted, waiting for confirmation
	InRange  bool // player inside the pickup radius last tick

	// Hover
	BaseHeight float64
	Rise       *gween.Tween
	Fall       *gween.Tween
	Rising     bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
