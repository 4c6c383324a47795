package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	mockUsecase "crosspromo/internal/mocks/usecase"
	"crosspromo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStickerTestServer(t *testing.T) (*mockUsecase.MockStickerUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockStickerUsecase(t)
	h := NewStickerHandler(StickerHandlerParams{StickerUC: uc})

	e := newTestEcho()
	e.POST("/v1/offers/:offerId/sticker", h.ComposeSticker, asViewer)
	e.GET("/v1/offers/:offerId/sticker", h.GetSticker, asViewer)

	return uc, e
}

func TestStickerHandler_ComposeSticker(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	body := `{"storeId":"store-1","storeName":"Bakery A","callToAction":"10% off"}`

	expectCompose := func(uc *mockUsecase.MockStickerUsecase) {
		uc.EXPECT().ComposeSticker(mock.Anything, testViewer, &usecase.ComposeStickerInput{
			OfferID:      "offer-1",
			StoreID:      "store-1",
			StoreName:    "Bakery A",
			CallToAction: "10% off",
		}).Return(&entity.Sticker{OfferID: "offer-1", PNG: pngBytes, Payload: "https://offers.example.com/o/offer-1"}, nil).Once()
	}

	t.Run("json", func(t *testing.T) {
		uc, e := newStickerTestServer(t)
		expectCompose(uc)

		rec := doRequest(t, e, http.MethodPost, "/v1/offers/offer-1/sticker", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var sticker StickerResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &sticker))
		assert.Equal(t, pngBytes, sticker.PNG)
		assert.Equal(t, "https://offers.example.com/o/offer-1", sticker.Payload)
	})

	t.Run("png", func(t *testing.T) {
		uc, e := newStickerTestServer(t)
		expectCompose(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/offer-1/sticker", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAccept, "image/png")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, pngBytes, rec.Body.Bytes())
	})

	t.Run("missing store name", func(t *testing.T) {
		_, e := newStickerTestServer(t)

		rec := doRequest(t, e, http.MethodPost, "/v1/offers/offer-1/sticker", `{"storeId":"store-1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "storeName is required")
	})
}

func TestStickerHandler_GetSticker(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, e := newStickerTestServer(t)
		uc.EXPECT().GetSticker(mock.Anything, testViewer, "offer-1").Return([]byte("png"), nil).Once()

		rec := doRequest(t, e, http.MethodGet, "/v1/offers/offer-1/sticker", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png", rec.Body.String())
	})

	t.Run("storage disabled", func(t *testing.T) {
		uc, e := newStickerTestServer(t)
		uc.EXPECT().GetSticker(mock.Anything, testViewer, "offer-1").Return(nil, domainerrors.ErrStickerStorageDisabled).Once()

		rec := doRequest(t, e, http.MethodGet, "/v1/offers/offer-1/sticker", "")
		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}
