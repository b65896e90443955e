package salon_api

import (
	"bytes"
	"context"
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/responses"
	"cosmek-web/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	apiPrefix               = "/api/v1"
	maxResponseBodyInBytes  = 1 << 20
	defaultHTTPTimeoutInSec = 10
)

// Transport performs JSON calls against the salon API. It is shared by the
// per-resource clients and is safe for concurrent use.
type Transport struct {
	baseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

// Call describes one request. FailureMessage is shown to the visitor when the
// response body carries no usable message.
type Call struct {
	Method         string
	Path           string
	Query          url.Values
	Body           interface{}
	Out            interface{}
	FailureMessage string
}

func NewTransport(cfg config.AppSalonAPI, log *zap.Logger) *Transport {
	timeout := cfg.HTTPTimeoutInSeconds
	if timeout <= 0 {
		timeout = defaultHTTPTimeoutInSec
	}

	var limiter *rate.Limiter
	if cfg.MaxRequestsPerSecond > 0 {
		burst := cfg.ThrottleBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxRequestsPerSecond), burst)
	}

	return &Transport{
		baseUrl:    strings.TrimRight(cfg.BaseUrl, "/") + apiPrefix,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter:    limiter,
		log:        log,
	}
}

func (t *Transport) URL(path string, query url.Values) string {
	target := t.baseUrl + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (t *Transport) Do(ctx context.Context, call Call) error {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return exceptions.ErrSalonAPIThrottled(err, call.FailureMessage)
		}
	}

	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	target := t.URL(call.Path, call.Query)
	req, err := http.NewRequestWithContext(ctx, call.Method, target, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if call.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err, call.FailureMessage)
		}
		return exceptions.ErrSendHTTPRequest(err, call.FailureMessage)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyInBytes))
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err, call.FailureMessage)
	}

	t.log.Debug("SalonAPI.Do completed",
		zap.String(constvars.LoggingMethodKey, call.Method),
		zap.String(constvars.LoggingURLKey, target),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ExtractErrorMessage(respBody, call.FailureMessage)
		return exceptions.ErrSalonAPIRequest(errors.New(message), resp.StatusCode, message, call.Method, call.Path)
	}

	if call.Out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, call.Out); err != nil {
		return exceptions.ErrSalonAPIDecodeResponse(err, call.FailureMessage, call.Path)
	}
	return nil
}

// ExtractErrorMessage reads the best available message from an error body:
// the errors list joined with ", ", then error, then message, then fallback.
// An errors object of field name to messages is flattened as "field message".
func ExtractErrorMessage(body []byte, fallback string) string {
	var apiErr responses.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fallback
	}

	if message := joinErrors(apiErr.Errors); message != "" {
		return message
	}
	if apiErr.Error != "" {
		return apiErr.Error
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func joinErrors(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		var messages []string
		for _, name := range names {
			for _, message := range fields[name] {
				messages = append(messages, fmt.Sprintf("%s %s", name, message))
			}
		}
		return strings.Join(messages, ", ")
	}
	return ""
}
