package handler

import (
	"net/http"
	"strings"

	"crosspromo/internal/delivery/http/response"
	"crosspromo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeImagePNG = "image/png"

// StickerHandlerParams holds dependencies for StickerHandler, injected by Fx.
type StickerHandlerParams struct {
	fx.In

	StickerUC usecase.StickerUsecase
}

// StickerHandler serves offer QR stickers
type StickerHandler struct {
	stickerUC usecase.StickerUsecase
}

// NewStickerHandler is the constructor for StickerHandler
func NewStickerHandler(params StickerHandlerParams) *StickerHandler {
	return &StickerHandler{stickerUC: params.StickerUC}
}

// StickerResponse describes a composed sticker. PNG is base64 encoded by encoding/json.
type StickerResponse struct {
	OfferID    string `json:"offerId"`
	Payload    string `json:"payload"`
	StorageKey string `json:"storageKey,omitempty"`
	PNG        []byte `json:"png"`
}

// ComposeSticker handles rendering an offer sticker. Clients accepting image/png get the image itself.
func (h *StickerHandler) ComposeSticker(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var input usecase.ComposeStickerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid sticker input")
	}
	input.OfferID = c.Param("offerId")

	if err := c.Validate(&input); err != nil {
		return response.AppError(c, err)
	}

	sticker, err := h.stickerUC.ComposeSticker(c.Request().Context(), viewer, &input)
	if err != nil {
		return response.AppError(c, err)
	}

	if wantsPNG(c) {
		return c.Blob(http.StatusCreated, mimeImagePNG, sticker.PNG)
	}

	return response.Success(c, http.StatusCreated, StickerResponse{
		OfferID:    sticker.OfferID,
		Payload:    sticker.Payload,
		StorageKey: sticker.StorageKey,
		PNG:        sticker.PNG,
	}, "Sticker composed successfully")
}

// GetSticker handles downloading a stored sticker
func (h *StickerHandler) GetSticker(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return unauthorized(c)
	}

	png, err := h.stickerUC.GetSticker(c.Request().Context(), viewer, c.Param("offerId"))
	if err != nil {
		return response.AppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, mimeImagePNG, png)
}

func wantsPNG(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), mimeImagePNG)
}
