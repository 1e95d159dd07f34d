package theme

// SolarizedDarkPalette returns the Solarized Dark palette.
func SolarizedDarkPalette() Palette {
	return Palette{
		Name: "solarized-dark",
		Dark: true,

		Background:         "#002b36",
		Foreground:         "#93a1a1",
		Selection:          "#073642",
		Cursor:             "#839496",
		DropdownBackground: "#00212b",
		DropdownBorder:     "#2aa19899",
		ActiveLine:         "#073642", // same as selection
		MatchingBracket:    "",

		Keyword:   "#859900",
		Storage:   "#93A1A1",
		Variable:  "#839496",
		Parameter: "",
		Function:  "#268BD2",
		String:    "#2AA198",
		Constant:  "#CB4B16",
		Type:      "#859900",
		Class:     "#CB4B16",
		Number:    "#D33682",
		Comment:   "#657B83",
		Heading:   "#268BD2",
		Invalid:   "",
		Regexp:    "#D30102",
	}
}

// NewSolarizedDark creates the Solarized Dark theme.
func NewSolarizedDark() *Theme {
	return New(SolarizedDarkPalette())
}
