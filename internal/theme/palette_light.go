package theme

// LightPalette is the palette for the LIGHT theme.
var LightPalette = Palette{
	ColorDefault:  "#ffffff",
	ColorRed:      "#f28b82",
	ColorOrange:   "#fbbc04",
	ColorYellow:   "#fff475",
	ColorGreen:    "#ccff90",
	ColorTeal:     "#a7ffeb",
	ColorBlue:     "#cbf0f8",
	ColorCerulean: "#aecbfa",
	ColorPurple:   "#d7aefb",
	ColorPink:     "#fdcfe8",
	ColorBrown:    "#e6c9a8",
	ColorGray:     "#e8eaed",
	ColorText:     "black",
}
