package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"testing"

	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	mockSvc "crosspromo/internal/mocks/service"
	"crosspromo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStickerService(t *testing.T) (usecase.StickerUsecase, *mockSvc.MockStickerComposer, *mockSvc.MockStickerStore) {
	t.Helper()

	composer := mockSvc.NewMockStickerComposer(t)
	store := mockSvc.NewMockStickerStore(t)
	svc := NewStickerService(StickerServiceParams{
		Logger:   slog.New(slog.DiscardHandler),
		Composer: composer,
		Store:    store,
	})

	return svc, composer, store
}

func TestStickerService_ComposeSticker(t *testing.T) {
	viewer := entity.Viewer{ID: "viewer-1"}
	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	t.Run("composes without storing", func(t *testing.T) {
		svc, composer, _ := newTestStickerService(t)
		composer.EXPECT().Compose(entity.StickerSpec{
			OfferID:      "offer-1",
			StoreID:      "store-1",
			StoreName:    "Bakery A",
			CallToAction: "Scan for 10% off",
		}).Return(&entity.Sticker{OfferID: "offer-1", PNG: pngBytes, Payload: "https://example.com/offers/offer-1"}, nil).Once()

		sticker, err := svc.ComposeSticker(context.Background(), viewer, &usecase.ComposeStickerInput{
			OfferID:      "offer-1",
			StoreID:      "store-1",
			StoreName:    "  Bakery A ",
			CallToAction: "Scan for 10% off",
		})
		require.NoError(t, err)
		assert.Equal(t, pngBytes, sticker.PNG)
		assert.Empty(t, sticker.StorageKey)
	})

	t.Run("stores when asked", func(t *testing.T) {
		svc, composer, store := newTestStickerService(t)
		logo := []byte("logo-bytes")
		store.EXPECT().Enabled().Return(true)
		composer.EXPECT().Compose(mock.MatchedBy(func(spec entity.StickerSpec) bool {
			return spec.OfferID == "offer-1" && string(spec.Logo) == "logo-bytes"
		})).Return(&entity.Sticker{OfferID: "offer-1", PNG: pngBytes}, nil).Once()
		store.EXPECT().Save(mock.Anything, "stickers/viewer-1/offer-1.png", pngBytes).Return(nil).Once()

		sticker, err := svc.ComposeSticker(context.Background(), viewer, &usecase.ComposeStickerInput{
			OfferID:   "offer-1",
			StoreID:   "store-1",
			StoreName: "Bakery A",
			Logo:      base64.StdEncoding.EncodeToString(logo),
			Store:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, "stickers/viewer-1/offer-1.png", sticker.StorageKey)
	})

	t.Run("storage disabled", func(t *testing.T) {
		svc, _, store := newTestStickerService(t)
		store.EXPECT().Enabled().Return(false)

		_, err := svc.ComposeSticker(context.Background(), viewer, &usecase.ComposeStickerInput{
			OfferID: "offer-1", StoreID: "store-1", StoreName: "Bakery A", Store: true,
		})
		assert.ErrorIs(t, err, domainerrors.ErrStickerStorageDisabled)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc, _, _ := newTestStickerService(t)

		_, err := svc.ComposeSticker(context.Background(), viewer, &usecase.ComposeStickerInput{OfferID: "../etc", StoreName: "x"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = svc.ComposeSticker(context.Background(), viewer, &usecase.ComposeStickerInput{OfferID: "offer-1", StoreName: "x", Logo: "%%%"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("composer failure", func(t *testing.T) {
		svc, composer, _ := newTestStickerService(t)
		composer.EXPECT().Compose(mock.Anything).Return(nil, assert.AnError).Once()

		_, err := svc.ComposeSticker(context.Background(), viewer, &usecase.ComposeStickerInput{OfferID: "offer-1", StoreName: "x"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestStickerService_GetSticker(t *testing.T) {
	viewer := entity.Viewer{ID: "viewer-1"}

	t.Run("loads stored sticker", func(t *testing.T) {
		svc, _, store := newTestStickerService(t)
		store.EXPECT().Enabled().Return(true)
		store.EXPECT().Load(mock.Anything, "stickers/viewer-1/offer-1.png").Return([]byte("png"), nil).Once()

		png, err := svc.GetSticker(context.Background(), viewer, "offer-1")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("missing sticker", func(t *testing.T) {
		svc, _, store := newTestStickerService(t)
		store.EXPECT().Enabled().Return(true)
		store.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrStickerNotFound).Once()

		_, err := svc.GetSticker(context.Background(), viewer, "offer-1")
		assert.ErrorIs(t, err, domainerrors.ErrStickerNotFound)
	})

	t.Run("storage disabled", func(t *testing.T) {
		svc, _, store := newTestStickerService(t)
		store.EXPECT().Enabled().Return(false)

		_, err := svc.GetSticker(context.Background(), viewer, "offer-1")
		assert.ErrorIs(t, err, domainerrors.ErrStickerStorageDisabled)
	})
}
