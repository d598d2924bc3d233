package wng

// Encounter is a combat with its turn state
type Encounter struct {
	ID         string       `json:"id"`
	Started    bool         `json:"started"`
	Round      int          `json:"round"`
	CurrentID  string       `json:"current_id,omitempty"`
	Combatants []*Combatant `json:"combatants"`
}

// Combatant is one actor's seat in an encounter
type Combatant struct {
	ID       string `json:"id"`
	ActorID  string `json:"actor_id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete,omitempty"`
}

// CombatantByActor finds the combatant for an actor, nil when absent
func (e *Encounter) CombatantByActor(actorID string) *Combatant {
	for _, c := range e.Combatants {
		if c.ActorID == actorID {
			return c
		}
	}
	return nil
}

// Combatant finds a combatant by ID, nil when absent
func (e *Encounter) Combatant(id string) *Combatant {
	for _, c := range e.Combatants {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// IsCurrent reports whether the combatant holds the active turn
func (e *Encounter) IsCurrent(combatantID string) bool {
	return combatantID != "" && e.CurrentID == combatantID
}
