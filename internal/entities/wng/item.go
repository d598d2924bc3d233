package wng

// ItemType tags the kind of item
type ItemType string

// Item types
const (
	ItemTypeWeapon        ItemType = "weapon"
	ItemTypeArmour        ItemType = "armour"
	ItemTypeGear          ItemType = "gear"
	ItemTypeAmmo          ItemType = "ammo"
	ItemTypeTalent        ItemType = "talent"
	ItemTypeAbility       ItemType = "ability"
	ItemTypePsychicPower  ItemType = "psychicPower"
	ItemTypeWeaponUpgrade ItemType = "weaponUpgrade"
	ItemTypeAugmetic      ItemType = "augmetic"
)

// Item belongs to exactly one actor
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       ItemType `json:"type"`
	Img        string   `json:"img,omitempty"`
	Equipped   bool     `json:"equipped,omitempty"`
	Equippable bool     `json:"equippable,omitempty"`
	// Location is the container the item is stowed in, empty when carried
	Location string `json:"location,omitempty"`
	// Skill is the stat a test with this item rolls
	Skill string `json:"skill,omitempty"`
	// Dice is the whole pool an ability roll uses, wrath die included
	Dice int `json:"dice,omitempty"`
}

// Stowed reports whether the item sits in a container rather than on the
// actor
func (i *Item) Stowed() bool {
	return i.Location != ""
}
