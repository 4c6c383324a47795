package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"path"
	"strings"

	deliverycontext "crosspromo/internal/delivery/context"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
	"crosspromo/internal/infra/metrics"
	"crosspromo/internal/usecase"
	"crosspromo/internal/util"

	"go.uber.org/fx"
)

// StickerServiceParams holds dependencies for the sticker service, injected by Fx
type StickerServiceParams struct {
	fx.In

	Logger   *slog.Logger
	Composer service.StickerComposer
	Store    service.StickerStore
}

type stickerService struct {
	composer service.StickerComposer
	store    service.StickerStore
	logger   *slog.Logger
}

// NewStickerService creates a new sticker service
func NewStickerService(params StickerServiceParams) usecase.StickerUsecase {
	return &stickerService{
		composer: params.Composer,
		store:    params.Store,
		logger:   params.Logger,
	}
}

// ComposeSticker renders the QR sticker for an offer and stores it when asked to
func (s *stickerService) ComposeSticker(ctx context.Context, viewer entity.Viewer, input *usecase.ComposeStickerInput) (*entity.Sticker, error) {
	logger := deliverycontext.Logger(ctx, s.logger)

	if err := validateOfferID(input.OfferID); err != nil {
		metrics.StickersComposed.WithLabelValues(metrics.OutcomeInvalid).Inc()

		return nil, err
	}

	var logo []byte
	if input.Logo != "" {
		decoded, err := base64.StdEncoding.DecodeString(input.Logo)
		if err != nil {
			metrics.StickersComposed.WithLabelValues(metrics.OutcomeInvalid).Inc()

			return nil, domainerrors.ErrValidationFailed.WithDetails("logo must be base64 encoded")
		}
		logo = decoded
	}

	if input.Store && !s.store.Enabled() {
		return nil, domainerrors.ErrStickerStorageDisabled
	}

	sticker, err := s.composer.Compose(entity.StickerSpec{
		OfferID:      input.OfferID,
		StoreID:      input.StoreID,
		StoreName:    strings.TrimSpace(input.StoreName),
		CallToAction: strings.TrimSpace(input.CallToAction),
		Logo:         logo,
	})
	if err != nil {
		metrics.StickersComposed.WithLabelValues(metrics.OutcomeFailure).Inc()
		logger.Error("Failed to compose sticker", slog.String("offer_id", input.OfferID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compose sticker")
	}

	if input.Store {
		key := stickerKey(viewer.ID, input.OfferID)
		if err := s.store.Save(ctx, key, sticker.PNG); err != nil {
			metrics.StickersComposed.WithLabelValues(metrics.OutcomeFailure).Inc()
			logger.Error("Failed to store sticker", slog.String("key", key), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to store sticker")
		}
		sticker.StorageKey = key
	}

	metrics.StickersComposed.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Info("Sticker composed",
		slog.String("viewer_id", viewer.ID),
		slog.String("offer_id", input.OfferID),
		slog.String("size", util.FormatBytes(int64(len(sticker.PNG)))),
		slog.Bool("stored", sticker.StorageKey != ""),
	)

	return sticker, nil
}

// GetSticker returns a previously stored sticker PNG
func (s *stickerService) GetSticker(ctx context.Context, viewer entity.Viewer, offerID string) ([]byte, error) {
	if err := validateOfferID(offerID); err != nil {
		return nil, err
	}
	if !s.store.Enabled() {
		return nil, domainerrors.ErrStickerStorageDisabled
	}

	png, err := s.store.Load(ctx, stickerKey(viewer.ID, offerID))
	if err != nil {
		return nil, err
	}

	return png, nil
}

func validateOfferID(offerID string) error {
	switch {
	case strings.TrimSpace(offerID) == "":
		return domainerrors.ErrValidationFailed.WithDetails("offer id is required")
	case strings.ContainsAny(offerID, `/\`) || strings.Contains(offerID, ".."):
		return domainerrors.ErrValidationFailed.WithDetails("offer id contains invalid characters")
	default:
		return nil
	}
}

// stickerKey is the bucket key of a viewer's sticker for an offer.
func stickerKey(viewerID, offerID string) string {
	return path.Join("stickers", viewerID, offerID+".png")
}
