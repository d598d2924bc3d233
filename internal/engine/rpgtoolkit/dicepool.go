package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
)

const poolDieSize = 6

// rollPool rolls pool d6, one of which is the wrath die. A pool below one
// still rolls the wrath die.
func rollPool(roller dice.Roller, test string, pool int) (*wng.RollResult, error) {
	if pool < 1 {
		pool = 1
	}

	result := &wng.RollResult{
		Test: test,
		Pool: pool,
	}

	if pool > 1 {
		rolls, err := roller.RollN(pool-1, poolDieSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll dice pool")
		}
		result.Dice = rolls
	}

	wrath, err := roller.Roll(poolDieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll wrath die")
	}
	result.Wrath = wrath

	for _, d := range result.Dice {
		result.Icons += icons(d)
	}
	result.Icons += icons(wrath)
	result.Complication = wrath == 1
	result.Critical = wrath == poolDieSize

	return result, nil
}

// icons scores one die: 4 and 5 are one icon, 6 is two
func icons(face int) int {
	switch {
	case face >= 6:
		return 2
	case face >= 4:
		return 1
	default:
		return 0
	}
}
