// Package toast delivers toasts to the viewer's open dashboards and, when configured, to their devices.
package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/infra/realtime"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	pushTitle   = "Partner offers"
	pushTimeout = 5 * time.Second
)

// FrameSender fans frames out to browser connections.
type FrameSender interface {
	SendToViewer(viewerID string, frame realtime.Frame) int
}

// SinkParams holds the dependencies of the toast sink
type SinkParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
	Hub    *realtime.Hub
	Push   service.PushNotifier `optional:"true"`
}

// Sink implements service.ToastSink.
type Sink struct {
	logger *slog.Logger
	frames FrameSender
	push   service.PushNotifier
	now    func() time.Time
	wg     sync.WaitGroup
}

// NewSink creates the toast sink. Pending pushes are awaited on shutdown.
func NewSink(params SinkParams) *Sink {
	sink := newSink(params.Logger, params.Hub, params.Push)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				sink.Wait()

				return nil
			},
		})
	}

	return sink
}

func newSink(logger *slog.Logger, frames FrameSender, push service.PushNotifier) *Sink {
	return &Sink{
		logger: logger.With(slog.String("component", "toast_sink")),
		frames: frames,
		push:   push,
		now:    time.Now,
	}
}

// Notify shows the toast on every open dashboard of the viewer. Push delivery runs in the
// background and failures are only logged.
func (s *Sink) Notify(ctx context.Context, viewerID string, toast entity.Toast) {
	if toast.ID == "" {
		toast.ID = uuid.NewString()
	}
	if toast.CreatedAt.IsZero() {
		toast.CreatedAt = s.now().UTC()
	}

	delivered := s.frames.SendToViewer(viewerID, realtime.Frame{Type: realtime.FrameToast, Toast: &toast})

	s.logger.Log(ctx, levelFor(toast.Level), "Toast",
		slog.String("viewerID", viewerID),
		slog.String("toastID", toast.ID),
		slog.String("message", toast.Message),
		slog.Int("connections", delivered),
	)

	if s.push == nil {
		return
	}

	pushCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		sendCtx, cancel := context.WithTimeout(pushCtx, pushTimeout)
		defer cancel()

		data := map[string]string{
			"toastId": toast.ID,
			"level":   string(toast.Level),
		}
		if err := s.push.SendToTopic(sendCtx, Topic(viewerID), pushTitle, toast.Message, data); err != nil {
			s.logger.Warn("Failed to push toast",
				slog.String("viewerID", viewerID),
				slog.String("toastID", toast.ID),
				slog.Any("error", err),
			)
		}
	}()
}

// PartnersUpdated tells the viewer's open dashboards to reload their partner lists.
// Devices are not pushed; the change is only visible on a dashboard.
func (s *Sink) PartnersUpdated(ctx context.Context, viewerID string) {
	delivered := s.frames.SendToViewer(viewerID, realtime.Frame{Type: realtime.FramePartnersUpdate})

	s.logger.Log(ctx, slog.LevelDebug, "Partners updated",
		slog.String("viewerID", viewerID),
		slog.Int("connections", delivered),
	)
}

// Wait blocks until background push deliveries finish.
func (s *Sink) Wait() {
	s.wg.Wait()
}

// Topic is the push topic a viewer's devices subscribe to.
func Topic(viewerID string) string {
	return "viewer_" + viewerID
}

func levelFor(level entity.ToastLevel) slog.Level {
	switch level {
	case entity.ToastError:
		return slog.LevelWarn
	case entity.ToastSuccess, entity.ToastInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
