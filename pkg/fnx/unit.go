package fnx

// Unit marks "no meaningful value" where a signature needs one.
type Unit struct{}

// Nothing is the Unit value. Unit is zero-sized, so every Unit{} is the same.
var Nothing = Unit{}

func (Unit) String() string {
	return "()"
}
