package host

// placeholderIcons are the VTT's stock icons; the HUD shows nothing instead
var placeholderIcons = map[string]struct{}{
	"icons/svg/mystery-man.svg": {},
	"icons/svg/item-bag.svg":    {},
	"icons/svg/book.svg":        {},
}

// DefaultImages drops placeholder icons and passes everything else through
type DefaultImages struct{}

// Image implements ImageResolver
func (DefaultImages) Image(ref string) string {
	if _, ok := placeholderIcons[ref]; ok {
		return ""
	}
	return ref
}
