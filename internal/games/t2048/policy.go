package t2048

import (
	"errors"
	"fmt"
)

// WinTile is the tile value the end-of-game policies are measured against.
const WinTile = 2048

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("t2048: unknown policy")

// Policy decides what happens when a tile reaches or passes WinTile.
// A session runs under exactly one policy.
type Policy string

const (
	// PolicyReach declares a win as soon as any tile equals WinTile.
	PolicyReach Policy = "reach"
	// PolicyOverflow ends the game as a loss once any tile exceeds WinTile.
	PolicyOverflow Policy = "overflow"
)

// ParsePolicy converts a config string into a Policy. Empty means PolicyReach.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyReach:
		return PolicyReach, nil
	case PolicyOverflow:
		return PolicyOverflow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Outcome is the result of evaluating a board after a move.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeWin      Outcome = "win"
	OutcomeNoMoves  Outcome = "no_moves"
	OutcomeOverflow Outcome = "overflow"
)

// Evaluate applies the policy to a board. It does not check for terminal
// states; see IsTerminal.
func (p Policy) Evaluate(board Board) Outcome {
	switch p {
	case PolicyOverflow:
		if board.MaxTile() > WinTile {
			return OutcomeOverflow
		}
	default:
		for r := range board {
			for _, v := range board[r] {
				if v == WinTile {
					return OutcomeWin
				}
			}
		}
	}
	return OutcomeNone
}
