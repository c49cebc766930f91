package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"

	"fortuned/internal/models"
	"fortuned/internal/providers"
	"fortuned/internal/structures"
)

const (
	recommendPath = "/api/date-picker/recommend"
	lifeMapPath   = "/api/lifemap/trends"
	fortunePath   = "/api/fortune"
)

type ClientInterface interface {
	RecommendDates(ctx context.Context, req *models.RecommendRequest) (*models.RecommendationData, error)
	LifeMapTrends(ctx context.Context, req *models.LifeMapRequest) (*models.LifeMapData, error)
	DayFortune(ctx context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error)
}

// Client talks JSON to the remote fortune services. Every call retries
// with bounded attempts and multiplicative backoff; an envelope with
// success=false counts as a failure and is retried like a transport error.
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries uint64
	retryDelay time.Duration
	factor     float64
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) ClientInterface {
	return &Client{
		baseURL:    conf.Remote.BaseURL,
		http:       &http.Client{Timeout: conf.Remote.Timeout},
		maxRetries: conf.Remote.MaxRetries,
		retryDelay: conf.Remote.RetryDelay,
		factor:     conf.Remote.Backoff,
		logger:     logger,
		metrics:    metrics,
	}
}

// post sends the payload and hands the response body to decode. decode
// errors are retried; request construction errors are permanent.
func (c *Client) post(ctx context.Context, path string, payload interface{}, decode func([]byte) error) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: status %d", path, resp.StatusCode)
		}
		return decode(data)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryDelay
	bo.Multiplier = c.factor
	bo.RandomizationFactor = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)
	return backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		c.logger.Warnf(providers.TypeApp, "Remote call %s failed, retrying in %s: %s", path, wait, err)
	})
}

func (c *Client) RecommendDates(ctx context.Context, req *models.RecommendRequest) (*models.RecommendationData, error) {
	var env models.RecommendEnvelope
	err := c.post(ctx, recommendPath, req, func(data []byte) error {
		env = models.RecommendEnvelope{}
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		return envelopeErr(env.Success, env.Data != nil, env.Error, "date recommendation request failed")
	})
	if err != nil {
		c.metrics.IncRemoteFailures("recommend")
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) LifeMapTrends(ctx context.Context, req *models.LifeMapRequest) (*models.LifeMapData, error) {
	var env models.LifeMapEnvelope
	err := c.post(ctx, lifeMapPath, req, func(data []byte) error {
		env = models.LifeMapEnvelope{}
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		return envelopeErr(env.Success, env.Data != nil, env.Error, "life map request failed")
	})
	if err != nil {
		c.metrics.IncRemoteFailures("lifemap")
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) DayFortune(ctx context.Context, req *models.DayFortuneRequest) (*models.DayFortune, error) {
	var env models.DayFortuneEnvelope
	err := c.post(ctx, fortunePath, req, func(data []byte) error {
		env = models.DayFortuneEnvelope{}
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		return envelopeErr(env.Success, env.Data != nil, env.Error, "day fortune request failed")
	})
	if err != nil {
		c.metrics.IncRemoteFailures("fortune")
		return nil, err
	}
	return env.Data, nil
}

func envelopeErr(success, hasData bool, remoteErr, fallback string) error {
	if success && hasData {
		return nil
	}
	if remoteErr != "" {
		return errors.New(remoteErr)
	}
	return errors.New(fallback)
}
