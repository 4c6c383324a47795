package sticker

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const ellipsis = "..."

var face = basicfont.Face7x13

// renderText draws text with the built-in bitmap face and scales it up by at most maxScale
// without exceeding maxWidth. Text that does not fit at scale one is truncated.
func renderText(text string, col color.Color, maxWidth, maxScale int) *image.NRGBA {
	text = asciiOnly(text)
	text = truncate(text, maxWidth)

	width := font.MeasureString(face, text).Ceil()
	if width == 0 {
		width = 1
	}
	height := face.Metrics().Height.Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)

	scale := maxScale
	for scale > 1 && width*scale > maxWidth {
		scale--
	}
	if scale == 1 {
		return img
	}

	return imaging.Resize(img, width*scale, height*scale, imaging.NearestNeighbor)
}

// truncate shortens text until it fits maxWidth at scale one.
func truncate(text string, maxWidth int) string {
	if font.MeasureString(face, text).Ceil() <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + ellipsis
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			return candidate
		}
	}

	return ""
}

// asciiOnly replaces glyphs the bitmap face cannot draw.
func asciiOnly(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}

		return r
	}, strings.TrimSpace(text))
}
