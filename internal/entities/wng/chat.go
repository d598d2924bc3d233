package wng

import "time"

// ChatKind tags what produced a chat message
type ChatKind string

// Chat kinds
const (
	ChatKindRoll   ChatKind = "roll"
	ChatKindItem   ChatKind = "item"
	ChatKindScript ChatKind = "script"
	// ChatKindSheet is an item sheet opened from the HUD
	ChatKindSheet ChatKind = "sheet"
)

// ChatMessage is one entry in the game chat log
type ChatMessage struct {
	ID        string      `json:"id"`
	ActorID   string      `json:"actor_id"`
	Speaker   string      `json:"speaker"`
	Kind      ChatKind    `json:"kind"`
	Content   string      `json:"content"`
	Roll      *RollResult `json:"roll,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// RollResult is a dice pool test. Icons count 4s and 5s once and 6s twice;
// the wrath die is rolled separately and also adds icons.
type RollResult struct {
	Test         string `json:"test"`
	Pool         int    `json:"pool"`
	Dice         []int  `json:"dice"`
	Wrath        int    `json:"wrath"`
	Icons        int    `json:"icons"`
	Complication bool   `json:"complication,omitempty"`
	Critical     bool   `json:"critical,omitempty"`
}
