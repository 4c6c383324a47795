// Package sticker composes the printable QR stickers retailers put up for their offers.
package sticker

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"net/url"
	"strings"

	"crosspromo/config"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

const (
	minSize       = 256
	payloadType   = "offer"
	footerDefault = "Scan to view this offer"
)

var (
	brandColor  = color.NRGBA{R: 17, G: 24, B: 39, A: 255}
	textColor   = color.NRGBA{R: 17, G: 24, B: 39, A: 255}
	accentColor = color.NRGBA{R: 220, G: 38, B: 38, A: 255}
	mutedColor  = color.NRGBA{R: 107, G: 114, B: 128, A: 255}
)

type composer struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
	brandName            string
}

// OfferQRData is the QR payload used when no public offer URL is configured
type OfferQRData struct {
	OfferID string `json:"offer_id"`
	StoreID string `json:"store_id,omitempty"`
	Type    string `json:"type"`
}

// NewComposer creates a new sticker composer
func NewComposer(cfg *config.Config) service.StickerComposer {
	stickerCfg := cfg.Sticker
	if stickerCfg == nil {
		stickerCfg = &config.StickerConfig{}
	}

	size := stickerCfg.Size
	if size < minSize {
		size = minSize
	}

	brand := strings.TrimSpace(stickerCfg.BrandName)
	if brand == "" {
		brand = "Partner Offers"
	}

	return &composer{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(stickerCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(stickerCfg.BaseURL, "/"),
		brandName:            brand,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Compose renders the sticker: brand header, offer QR code, store name, call to action and footer.
func (c *composer) Compose(spec entity.StickerSpec) (*entity.Sticker, error) {
	if strings.TrimSpace(spec.OfferID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer id is required")
	}
	if strings.TrimSpace(spec.StoreName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store name is required")
	}

	var logo image.Image
	if len(spec.Logo) > 0 {
		decoded, err := imaging.Decode(bytes.NewReader(spec.Logo))
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("logo must be a PNG or JPEG image")
		}
		logo = decoded
	}

	payload, err := c.payload(spec)
	if err != nil {
		return nil, err
	}

	level := c.errorCorrectionLevel
	if logo != nil {
		// the logo hides the center modules
		level = qrcode.Highest
	}

	qr, err := qrcode.New(payload, level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	img := c.layout(qr.Image(c.size-2*c.padding()), logo, spec)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(err, "failed to encode sticker")
	}

	return &entity.Sticker{
		OfferID: spec.OfferID,
		PNG:     buf.Bytes(),
		Payload: payload,
	}, nil
}

// ParseOfferQR reads an offer id back from a scanned payload.
func (c *composer) ParseOfferQR(payload string) (string, error) {
	payload = strings.TrimSpace(payload)

	if strings.HasPrefix(payload, "{") {
		var data OfferQRData
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			return "", domainerrors.ErrValidationFailed.WithDetails("malformed QR payload")
		}
		if data.Type != payloadType {
			return "", domainerrors.ErrValidationFailed.WithDetails("invalid QR code type: " + data.Type)
		}
		if data.OfferID == "" {
			return "", domainerrors.ErrValidationFailed.WithDetails("QR payload has no offer id")
		}

		return data.OfferID, nil
	}

	if c.baseURL == "" || !strings.HasPrefix(payload, c.baseURL+"/") {
		return "", domainerrors.ErrValidationFailed.WithDetails("QR payload is not an offer link")
	}

	u, err := url.Parse(payload)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("malformed offer link")
	}

	segment := u.EscapedPath()
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	offerID, err := url.PathUnescape(segment)
	if err != nil || offerID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("offer link has no offer id")
	}

	return offerID, nil
}

// payload is the offer URL when a base URL is configured, a JSON document otherwise.
func (c *composer) payload(spec entity.StickerSpec) (string, error) {
	if c.baseURL != "" {
		link := c.baseURL + "/" + url.PathEscape(spec.OfferID)
		if spec.StoreID != "" {
			link += "?" + url.Values{"store": {spec.StoreID}}.Encode()
		}

		return link, nil
	}

	data, err := json.Marshal(OfferQRData{OfferID: spec.OfferID, StoreID: spec.StoreID, Type: payloadType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}

func (c *composer) padding() int {
	return c.size / 16
}

func (c *composer) layout(qrImg image.Image, logo image.Image, spec entity.StickerSpec) *image.NRGBA {
	width := c.size
	pad := c.padding()
	textWidth := width - 2*pad

	header := renderText(c.brandName, color.White, textWidth, 3)
	name := renderText(spec.StoreName, textColor, textWidth, 3)

	var cta *image.NRGBA
	if text := strings.TrimSpace(spec.CallToAction); text != "" {
		cta = renderText(text, accentColor, textWidth, 2)
	}

	footerText := footerDefault
	if c.baseURL != "" {
		footerText = strings.TrimPrefix(strings.TrimPrefix(c.baseURL, "https://"), "http://")
	}
	footer := renderText(footerText, mutedColor, textWidth, 1)

	headerHeight := header.Bounds().Dy() + 2*pad
	qrSide := qrImg.Bounds().Dx()

	height := headerHeight + pad + qrSide + pad + name.Bounds().Dy()
	if cta != nil {
		height += pad/2 + cta.Bounds().Dy()
	}
	height += pad + footer.Bounds().Dy() + pad

	canvas := imaging.New(width, height, color.White)
	canvas = imaging.Overlay(canvas, imaging.New(width, headerHeight, brandColor), image.Pt(0, 0), 1)
	canvas = pasteCentered(canvas, header, pad)

	y := headerHeight + pad
	qrCanvas := imaging.Clone(qrImg)
	if logo != nil {
		qrCanvas = withLogo(qrCanvas, logo)
	}
	canvas = imaging.Paste(canvas, qrCanvas, image.Pt((width-qrSide)/2, y))
	y += qrSide + pad

	canvas = pasteCentered(canvas, name, y)
	y += name.Bounds().Dy()

	if cta != nil {
		y += pad / 2
		canvas = pasteCentered(canvas, cta, y)
		y += cta.Bounds().Dy()
	}

	y += pad

	return pasteCentered(canvas, footer, y)
}

// withLogo places the logo on a white tile in the middle of the QR code.
func withLogo(qrImg *image.NRGBA, logo image.Image) *image.NRGBA {
	side := qrImg.Bounds().Dx()
	tile := side / 5
	margin := tile / 10

	fitted := imaging.Fit(logo, tile-2*margin, tile-2*margin, imaging.Lanczos)
	background := imaging.New(tile, tile, color.White)
	background = imaging.PasteCenter(background, fitted)

	return imaging.PasteCenter(qrImg, background)
}

func pasteCentered(canvas, img *image.NRGBA, y int) *image.NRGBA {
	x := (canvas.Bounds().Dx() - img.Bounds().Dx()) / 2

	return imaging.Overlay(canvas, img, image.Pt(x, y), 1)
}
