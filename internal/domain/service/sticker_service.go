package service

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// StickerComposer renders printable QR stickers for offers.
type StickerComposer interface {
	// Compose renders the sticker PNG for spec.
	Compose(spec entity.StickerSpec) (*entity.Sticker, error)

	// ParseOfferQR returns the offer id encoded in a scanned sticker payload.
	ParseOfferQR(payload string) (string, error)
}

// StickerStore keeps composed stickers for later download.
type StickerStore interface {
	Save(ctx context.Context, key string, png []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Enabled() bool
}
