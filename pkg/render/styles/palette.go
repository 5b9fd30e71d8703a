package styles

const (
	BadgeFill      = "#7E57C2"
	BadgeTextColor = "#FFFFFF"
	AvatarText     = "#37474F"
	ShadowColor    = "#808080"
)

var avatarFills = [3]string{"#B3EBF2", "#EF9A9A", "#A5D6A7"}

// AvatarColor returns the placeholder fill for the item at index.
func AvatarColor(index int) string {
	switch {
	case index%3 == 0:
		return avatarFills[0]
	case index%2 == 0:
		return avatarFills[1]
	default:
		return avatarFills[2]
	}
}

// ShadowParams derives the drop shadow from a shadow level. The offset is
// applied on both axes.
func ShadowParams(level float64) (offset, blur, opacity float64) {
	a := level
	if a < 0 {
		a = -a
	}
	return level * 0.5, a, min(0.25*a*0.4, 1)
}
