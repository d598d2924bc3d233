package hud

// Action is one clickable HUD entry. It is rebuilt on every render.
type Action struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ListName     string `json:"listName"`
	EncodedValue string `json:"encodedValue"`
	Img          string `json:"img,omitempty"`
	CSSClass     string `json:"cssClass,omitempty"`
}

// GroupData addresses the group an action list is added to
type GroupData struct {
	ID   GroupID `json:"id"`
	Type string  `json:"type"`
}

// SystemGroup returns the GroupData for a system group
func SystemGroup(id GroupID) GroupData {
	return GroupData{ID: id, Type: GroupTypeSystem}
}

// GroupActions is one addActions(actions, groupData) call
type GroupActions struct {
	Group   GroupData `json:"group"`
	Actions []Action  `json:"actions"`
}

// ListName prefixes name with the localized type label when one exists
func ListName(typeLabel, name string) string {
	if typeLabel == "" {
		return name
	}
	return typeLabel + ": " + name
}
