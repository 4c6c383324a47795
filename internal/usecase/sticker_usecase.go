package usecase

import (
	"context"

	"crosspromo/internal/domain/entity"
)

// ComposeStickerInput represents the input for composing an offer sticker
type ComposeStickerInput struct {
	OfferID      string `json:"-"`
	StoreID      string `json:"storeId" validate:"required"`
	StoreName    string `json:"storeName" validate:"required,max=80"`
	CallToAction string `json:"callToAction" validate:"max=120"`
	// Logo is an optional base64-encoded PNG or JPEG
	Logo string `json:"logo,omitempty" validate:"omitempty,base64"`
	// Store keeps the sticker for later download when storage is configured
	Store bool `json:"store"`
}

// StickerUsecase defines the offer sticker use cases
type StickerUsecase interface {
	// ComposeSticker renders the printable QR sticker of an offer.
	ComposeSticker(ctx context.Context, viewer entity.Viewer, input *ComposeStickerInput) (*entity.Sticker, error)

	// GetSticker loads a stored sticker PNG.
	GetSticker(ctx context.Context, viewer entity.Viewer, offerID string) ([]byte, error)
}
