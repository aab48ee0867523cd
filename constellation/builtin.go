package constellation

// Built-in constellation keys.
const (
	Lyra  = "LYRA"
	Orion = "ORION"
)

// Builtin returns the garden's constellations in matching order.
func Builtin() []Pattern {
	return []Pattern{
		{
			Key:   Lyra,
			Name:  "Lyra",
			Notes: []int{1, 2, 3},
			Offsets: []Point{
				{0, -30},
				{-50, 20},
				{50, 20},
			},
		},
		{
			Key:   Orion,
			Name:  "Orion",
			Notes: []int{3, 2, 1, 0},
			Offsets: []Point{
				{-30, -50}, {30, -50},
				{-40, 0}, {0, 0}, {40, 0},
				{-30, 50}, {30, 50},
			},
		},
	}
}

var defaultCatalog = mustCatalog(Builtin()...)

func mustCatalog(patterns ...Pattern) *Catalog {
	c, err := NewCatalog(patterns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog. It is never mutated after init.
func Default() *Catalog {
	return defaultCatalog
}

// CheckSequence matches seq against the built-in catalog.
func CheckSequence(seq []int) (string, bool) {
	return defaultCatalog.CheckSequence(seq)
}
