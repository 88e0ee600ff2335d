package theme

// DarkPalette is the palette for the DARK theme.
var DarkPalette = Palette{
	ColorDefault:  "#202124",
	ColorRed:      "#5c2b29",
	ColorOrange:   "#614a19",
	ColorYellow:   "#635d19",
	ColorGreen:    "#345920",
	ColorTeal:     "#16504b",
	ColorBlue:     "#2d555e",
	ColorCerulean: "#1e3a5f",
	ColorPurple:   "#42275e",
	ColorPink:     "#5b2245",
	ColorBrown:    "#442f19",
	ColorGray:     "#3c3f43",
	ColorText:     "white",
}
