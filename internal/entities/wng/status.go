package wng

// StatusEffect is a condition the game system knows about
type StatusEffect struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img,omitempty"`
}

// DefaultStatusEffects returns the Wrath & Glory condition list. The first
// entry is the blank "no condition" placeholder the VTT also carries.
func DefaultStatusEffects() []StatusEffect {
	return []StatusEffect{
		{ID: "", Name: ""},
		{ID: "bleeding", Name: "CONDITION.Bleeding", Img: "systems/wrath-and-glory/asset/icons/conditions/bleeding.svg"},
		{ID: "blinded", Name: "CONDITION.Blinded", Img: "systems/wrath-and-glory/asset/icons/conditions/blinded.svg"},
		{ID: "exhausted", Name: "CONDITION.Exhausted", Img: "systems/wrath-and-glory/asset/icons/conditions/exhausted.svg"},
		{ID: "fear", Name: "CONDITION.Fear", Img: "systems/wrath-and-glory/asset/icons/conditions/fear.svg"},
		{ID: "frenzied", Name: "CONDITION.Frenzied", Img: "systems/wrath-and-glory/asset/icons/conditions/frenzied.svg"},
		{ID: "hindered", Name: "CONDITION.Hindered", Img: "systems/wrath-and-glory/asset/icons/conditions/hindered.svg"},
		{ID: "onfire", Name: "CONDITION.OnFire", Img: "systems/wrath-and-glory/asset/icons/conditions/onfire.svg"},
		{ID: "pinned", Name: "CONDITION.Pinned", Img: "systems/wrath-and-glory/asset/icons/conditions/pinned.svg"},
		{ID: "poisoned", Name: "CONDITION.Poisoned", Img: "systems/wrath-and-glory/asset/icons/conditions/poisoned.svg"},
		{ID: "prone", Name: "CONDITION.Prone", Img: "systems/wrath-and-glory/asset/icons/conditions/prone.svg"},
		{ID: "restrained", Name: "CONDITION.Restrained", Img: "systems/wrath-and-glory/asset/icons/conditions/restrained.svg"},
		{ID: "staggered", Name: "CONDITION.Staggered", Img: "systems/wrath-and-glory/asset/icons/conditions/staggered.svg"},
		{ID: "terror", Name: "CONDITION.Terror", Img: "systems/wrath-and-glory/asset/icons/conditions/terror.svg"},
		{ID: "vulnerable", Name: "CONDITION.Vulnerable", Img: "systems/wrath-and-glory/asset/icons/conditions/vulnerable.svg"},
		{ID: "dying", Name: "CONDITION.Dying", Img: "systems/wrath-and-glory/asset/icons/conditions/dying.svg"},
		{ID: "dead", Name: "CONDITION.Dead", Img: "icons/svg/skull.svg"},
	}
}
