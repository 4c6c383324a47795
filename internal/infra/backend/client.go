// Package backend talks to the platform backend that owns stores, partnerships and requests.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"crosspromo/config"
	deliverycontext "crosspromo/internal/delivery/context"
	"crosspromo/internal/domain/entity"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"
	"crosspromo/internal/infra/metrics"
)

const (
	maxResponseBytes = 4 << 20
	idPlaceholder    = "{id}"

	opFetchCandidates   = "fetch_candidates"
	opFetchOwnLocations = "fetch_own_locations"
	opSendRequest       = "send_partnership_request"
	opCancelPartnership = "cancel_partnership"
)

// Client implements service.PartnerGateway over the platform's HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	paths      config.BackendConfig
	logger     *slog.Logger
}

var _ service.PartnerGateway = (*Client)(nil)

// NewClient creates the backend client. backend.baseUrl is required.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Backend == nil || strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return nil, errors.New("backend base url is required")
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.Backend.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid backend base url")
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, errors.Errorf("unsupported backend url scheme %q", baseURL.Scheme)
	}

	paths := cfg.Backend.WithDefaults()

	return &Client{
		httpClient: &http.Client{Timeout: paths.Timeout},
		baseURL:    baseURL,
		paths:      paths,
		logger:     logger,
	}, nil
}

// FetchCandidates returns the stores the viewer may partner with, normalized.
func (c *Client) FetchCandidates(ctx context.Context, viewer entity.Viewer, query service.CandidateQuery) ([]entity.StoreCandidate, error) {
	params := url.Values{}
	if query.Near != nil {
		params.Set("lat", strconv.FormatFloat(query.Near.Latitude, 'f', 6, 64))
		params.Set("lng", strconv.FormatFloat(query.Near.Longitude, 'f', 6, 64))
	}
	if query.RadiusMiles > 0 {
		params.Set("radius", strconv.FormatFloat(query.RadiusMiles, 'f', -1, 64))
	}

	body, err := c.do(ctx, opFetchCandidates, http.MethodGet, c.paths.CandidatesPath, params, viewer, nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, domainerrors.ErrBackendRejected.WithDetails(err.Error())
	}

	stores := make([]entity.StoreCandidate, 0, len(records))
	for i, raw := range records {
		store, ok := NormalizeStore(raw)
		if !ok {
			c.logger.Warn("Dropping candidate without id", slog.Int("index", i))

			continue
		}
		stores = append(stores, store)
	}

	return stores, nil
}

// FetchOwnLocations returns the viewer's own locations, normalized.
func (c *Client) FetchOwnLocations(ctx context.Context, viewer entity.Viewer) ([]entity.OwnLocation, error) {
	body, err := c.do(ctx, opFetchOwnLocations, http.MethodGet, c.paths.OwnLocationsPath, nil, viewer, nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, domainerrors.ErrBackendRejected.WithDetails(err.Error())
	}

	locations := make([]entity.OwnLocation, 0, len(records))
	for i, raw := range records {
		loc, ok := NormalizeOwnLocation(raw)
		if !ok {
			c.logger.Warn("Dropping own location without id", slog.Int("index", i))

			continue
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// SendPartnershipRequest asks targetStoreID to partner with the viewer's sourceLocationID.
func (c *Client) SendPartnershipRequest(ctx context.Context, viewer entity.Viewer, targetStoreID, sourceLocationID string) error {
	payload := entity.PartnerRequest{
		SenderLocationID: sourceLocationID,
		RecipientStoreID: targetStoreID,
		Status:           entity.RequestStatusPending,
	}

	_, err := c.do(ctx, opSendRequest, http.MethodPost, expandPath(c.paths.RequestPath, targetStoreID), nil, viewer, payload)

	return err
}

// CancelPartnership ends an active partnership.
func (c *Client) CancelPartnership(ctx context.Context, viewer entity.Viewer, partnershipID string) error {
	_, err := c.do(ctx, opCancelPartnership, http.MethodPost, expandPath(c.paths.CancelPath, partnershipID), nil, viewer, nil)

	return err
}

// do performs one call and maps its failure to a network AppError.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, viewer entity.Viewer, payload any) ([]byte, error) {
	start := time.Now()
	outcome := metrics.OutcomeFailure
	defer func() {
		metrics.BackendRequests.WithLabelValues(op, outcome).Inc()
		metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	target, err := c.resolve(path, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if viewer.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+viewer.AccessToken)
	}
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend call failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)

		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, transportError(op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Backend rejected call",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrBackendRejected.WithDetails(
			fmt.Sprintf("%s: status %d%s", op, resp.StatusCode, messageSuffix(body)))
	}

	if rejected, message := unsuccessful(body); rejected {
		return nil, domainerrors.ErrBackendRejected.WithDetails(fmt.Sprintf("%s: %s", op, message))
	}

	outcome = metrics.OutcomeSuccess

	return body, nil
}

// resolve joins an already escaped path onto the base URL. RawPath keeps escaped ids such as
// %2F intact instead of escaping them a second time.
func (c *Client) resolve(escapedPath string, params url.Values) (string, error) {
	u := *c.baseURL
	rawPath := strings.TrimRight(u.EscapedPath(), "/") + "/" + strings.TrimLeft(escapedPath, "/")

	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", errors.Wrapf(err, "invalid backend path %q", escapedPath)
	}
	u.Path, u.RawPath = path, rawPath
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// expandPath substitutes the escaped id into a path template.
func expandPath(template, id string) string {
	return strings.ReplaceAll(template, idPlaceholder, url.PathEscape(id))
}

func transportError(op string, err error) error {
	if errors.IsTimeout(err) {
		return domainerrors.ErrBackendTimeout.WithDetails(op)
	}

	return domainerrors.ErrBackendUnavailable.WithDetails(op + ": " + err.Error())
}

// unsuccessful reports a 2xx body that carries success=false.
func unsuccessful(body []byte) (bool, string) {
	var envelope struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &envelope) != nil {
		return false, ""
	}
	if envelope.Success == nil || *envelope.Success {
		return false, ""
	}

	return true, envelopeMessage(envelope.Message, envelope.Error)
}

func messageSuffix(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if json.Unmarshal(body, &envelope) != nil {
		return ""
	}
	if msg := envelopeMessage(envelope.Message, envelope.Error); msg != "" && msg != "request was not successful" {
		return ": " + msg
	}

	return ""
}

func envelopeMessage(message string, errField any) string {
	if message != "" {
		return message
	}
	switch v := errField.(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if m, ok := v["message"].(string); ok && m != "" {
			return m
		}
	}

	return "request was not successful"
}
