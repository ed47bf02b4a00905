package assets

// LayoutDef is a hand-made level: '#' or 1-9 for blocks (the digit is the
// block's life), 'o' for a ball, '.' for an empty cell. The top row is
// drawn highest on screen.
type LayoutDef struct {
	Name    string
	Tagline string
	Rows    []string
}

// Layouts are played in order before the generated levels.
var Layouts = []LayoutDef{
	{
		Name:    "Classic",
		Tagline: "Eight by eight. Nothing fancy.",
		Rows: []string{
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
		},
	},
	{
		Name:    "Checkerboard",
		Tagline: "Every other brick took the day off.",
		Rows: []string{
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
		},
	},
	{
		Name:    "Pyramid",
		Tagline: "The capstone holds out longest.",
		Rows: []string{
			"....33....",
			"...2222...",
			"..222222..",
			".11111111.",
			"1111111111",
		},
	},
	{
		Name:    "Fortress",
		Tagline: "Thick walls, soft middle.",
		Rows: []string{
			"444444444444",
			"4..........4",
			"4.22222222.4",
			"4.2######2.4",
			"4.22222222.4",
			"4..........4",
			"44444..44444",
		},
	},
	{
		Name:    "Twin Serve",
		Tagline: "Two balls, one paddle.",
		Rows: []string{
			"############",
			"#2########2#",
			"############",
			"............",
			"............",
			"............",
			"............",
			"..o......o..",
		},
	},
	{
		Name:    "Rainbow",
		Tagline: "Every color costs a little more.",
		Rows: []string{
			"99999999999999",
			"88888888888888",
			"77777777777777",
			"66666666666666",
			"55555555555555",
			"44444444444444",
			"33333333333333",
			"22222222222222",
			"11111111111111",
		},
	},
}
