package hud

import (
	"strings"

	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
)

// Delimiter separates the action type from the id in an encoded value.
// It must not appear in either part.
const Delimiter = "|"

// Encode joins an action type and id into the value the router decodes
func Encode(actionType ActionType, id string) (string, error) {
	if !actionType.Valid() {
		return "", errors.InvalidArgumentf("unknown action type %q", actionType)
	}
	if id == "" {
		return "", errors.InvalidArgument("action id is required")
	}
	if strings.Contains(id, Delimiter) {
		return "", errors.InvalidArgumentf("action id %q contains delimiter %q", id, Delimiter)
	}
	return string(actionType) + Delimiter + id, nil
}

// Decode splits an encoded value back into its action type and id
func Decode(encoded string) (ActionType, string, error) {
	typePart, id, found := strings.Cut(encoded, Delimiter)
	if !found {
		return "", "", errors.InvalidArgumentf("encoded value %q has no delimiter", encoded)
	}
	if strings.Contains(id, Delimiter) {
		return "", "", errors.InvalidArgumentf("encoded value %q has more than one delimiter", encoded)
	}

	actionType := ActionType(typePart)
	if !actionType.Valid() {
		return "", "", errors.InvalidArgumentf("unknown action type %q", typePart)
	}
	if id == "" {
		return "", "", errors.InvalidArgumentf("encoded value %q has no action id", encoded)
	}

	return actionType, id, nil
}
