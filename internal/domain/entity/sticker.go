package entity

// StickerSpec describes the printable QR sticker for an offer.
type StickerSpec struct {
	OfferID      string `json:"offerId"`
	StoreID      string `json:"storeId"`
	StoreName    string `json:"storeName"`
	CallToAction string `json:"callToAction"`
	Logo         []byte `json:"-"` // optional PNG or JPEG.
}

// Sticker is a composed sticker image.
type Sticker struct {
	OfferID    string `json:"offerId"`
	PNG        []byte `json:"-"`
	Payload    string `json:"payload"`
	StorageKey string `json:"storageKey,omitempty"`
}
