package catalog

// PlaceholderImage is the local asset used for product codes with no entry
// in the image table.
const PlaceholderImage = "placeholder.png"

// productImages maps product codes to bundled local image assets. The
// backend does not ship images; the client resolves them from the code.
var productImages = map[string]string{
	"G502":    "mouse_g502.png",
	"GPROX":   "mouse_gprox.png",
	"PS5":     "console_ps5.png",
	"XSX":     "console_xsx.png",
	"SWITCH2": "console_switch2.png",
	"K70RGB":  "keyboard_k70.png",
	"ARCTIS7": "headset_arctis7.png",
}

// ImageForCode resolves the local image asset for a product code.
func ImageForCode(code string) string {
	if img, ok := productImages[code]; ok {
		return img
	}
	return PlaceholderImage
}
