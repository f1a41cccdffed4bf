package defillama

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/caentzminger/defillama/apierrors"
	"github.com/caentzminger/defillama/models"
)

// host is one of the logical service hosts an operation is bound to.
type host int

const (
	hostAPI host = iota
	hostCoins
	hostStablecoins
	hostYields
	hostCount
)

func (h host) String() string {
	switch h {
	case hostAPI:
		return "api"
	case hostCoins:
		return "coins"
	case hostStablecoins:
		return "stablecoins"
	case hostYields:
		return "yields"
	default:
		return "unknown"
	}
}

// Envelope keys some endpoints wrap their list in.
const (
	envelopeData         = "data"
	envelopePeggedAssets = "peggedAssets"
)

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-Id"

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// request describes one GET against the service.
type request struct {
	op       string
	host     host
	path     string
	query    url.Values
	envelope string
}

// pathJoin escapes each segment and joins them into an absolute path.
func pathJoin(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// coinsSegment renders a coin list as one path segment. Each identifier is
// escaped on its own so the joining commas and the chain colons stay literal.
func coinsSegment[T ~string](coins []T) string {
	escaped := make([]string, len(coins))
	for i, c := range coins {
		escaped[i] = url.PathEscape(string(c))
	}
	return models.JoinCoins(escaped)
}

func unixString(ts int64) string {
	return strconv.FormatInt(ts, 10)
}

// requestURL builds the full request URL. Parameters are only present when set by the caller.
func (c *Client) requestURL(req request) string {
	u := c.hosts[req.host] + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}
	return u
}

// get performs the request and parses the body into a JSON value.
func (c *Client) get(ctx context.Context, req request) (models.Value, error) {
	reqURL := c.requestURL(req)
	requestID := uuid.NewString()
	logger := c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"operation":  req.op,
		"method":     http.MethodGet,
		"url":        reqURL,
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Value{}, apierrors.NewTransportError(req.op, reqURL, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.WithField("duration", time.Since(start)).WithError(err).Debug("http request failed")
		return models.Value{}, apierrors.NewTransportError(req.op, reqURL, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	logger.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
		"bytes":    len(body),
	}).Debug("http request")

	if err != nil {
		return models.Value{}, apierrors.NewTransportError(req.op, reqURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Value{}, apierrors.NewHTTPError(req.op, reqURL, resp.StatusCode, body)
	}

	v, err := models.Parse(body)
	if err != nil {
		verr := apierrors.NewValidationError(models.RootPath, "valid JSON", err.Error())
		verr.Operation = req.op
		return models.Value{}, verr
	}
	return v, nil
}

// unwrap strips the endpoint's envelope. A bare value is passed through, since
// the service does not always wrap.
func unwrap(v models.Value, key string) models.Value {
	if key == "" || v.Kind() != models.KindObject {
		return v
	}
	if inner, ok := v.Field(key); ok {
		return inner
	}
	return v
}

// fetch runs req and decodes the unwrapped body.
func fetch[T any](ctx context.Context, c *Client, req request, decode func(models.Value) (T, error)) (T, error) {
	var zero T

	v, err := c.get(ctx, req)
	if err != nil {
		c.logFailure(req, err)
		return zero, err
	}

	out, err := decode(unwrap(v, req.envelope))
	if err != nil {
		var verr *apierrors.ValidationError
		if errors.As(err, &verr) {
			verr.Operation = req.op
		}
		c.logFailure(req, err)
		return zero, err
	}
	return out, nil
}

func (c *Client) logFailure(req request, err error) {
	c.logger.WithFields(logrus.Fields{
		"operation": req.op,
		"host":      req.host.String(),
		"category":  apierrors.Categorize(err),
	}).WithError(err).Warn("defillama call failed")
}

// argError reports caller misuse before any I/O.
func (c *Client) argError(op, param, reason string) error {
	err := apierrors.NewArgumentError(op, param, reason)
	c.logger.WithFields(logrus.Fields{
		"operation": op,
		"category":  apierrors.CategoryArgument,
	}).WithError(err).Warn("defillama call rejected")
	return err
}

// checkCoins rejects an empty list and identifiers without a chain prefix.
func (c *Client) checkCoins(op string, coins []string) error {
	if len(coins) == 0 {
		return c.argError(op, "coins", "at least one coin is required")
	}
	for _, coin := range coins {
		if _, _, ok := models.ParseCoin(coin); !ok {
			return c.argError(op, "coins", "expected chain:address or coingecko:id, got "+strconv.Quote(coin))
		}
	}
	return nil
}

func (c *Client) checkRequired(op, param, value string) error {
	if strings.TrimSpace(value) == "" {
		return c.argError(op, param, "must not be empty")
	}
	return nil
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int64) {
	if value != 0 {
		q.Set(key, strconv.FormatInt(value, 10))
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}
