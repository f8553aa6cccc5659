// Package bridgeservice is the client of the indexer ("bridge service") that
// lists deposits and claims and serves the exit roots needed to claim them.
package bridgeservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

const (
	meterName = "github.com/agglayer/aggsandbox/bridgeservice"
	basePath  = "/bridge/v1"

	endpointBridges              = "bridges"
	endpointL1InfoTreeIndex      = "l1-info-tree-index"
	endpointClaimProof           = "claim-proof"
	endpointClaims               = "claims"
	endpointSponsorClaim         = "sponsor-claim"
	endpointSponsoredClaimStatus = "sponsored-claim-status"

	maxErrorBody = 512
)

// ErrUnknownNetwork is returned for a network without configured bridge service
var ErrUnknownNetwork = errors.New("no bridge service configured for network")

// HTTPError is a non 2xx answer of the bridge service
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("bridge service %s answered %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

type endpoint struct {
	url     string
	limiter *rate.Limiter
}

// Client talks to the bridge service of every configured network. Calls to
// one network share its rate limiter.
type Client struct {
	cfg       Config
	logger    *log.Logger
	http      *retryablehttp.Client
	endpoints map[uint32]endpoint
	jsonrpc   map[uint32]*JSONRPCClient
	requests  metric.Int64Counter
}

// NewClient returns a client for the given networks
func NewClient(cfg Config, networks []types.NetworkConfig, logger *log.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = log.WithFields("module", "bridgeservice")
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin.Duration > 0 {
		httpClient.RetryWaitMin = cfg.RetryWaitMin.Duration
	}
	if cfg.RetryWaitMax.Duration > 0 {
		httpClient.RetryWaitMax = cfg.RetryWaitMax.Duration
	}
	httpClient.HTTPClient.Timeout = cfg.RequestTimeout.Duration
	httpClient.Logger = &leveledLogger{logger: logger}
	// the last answer is classified by the caller instead of a generic "giving up" error
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		cfg:       cfg,
		logger:    logger,
		http:      httpClient,
		endpoints: make(map[uint32]endpoint, len(networks)),
		jsonrpc:   make(map[uint32]*JSONRPCClient),
	}
	for _, n := range networks {
		if n.BridgeServiceURL == "" {
			continue
		}
		limit, burst := rate.Inf, 0
		if n.RequestsPerSecond > 0 {
			limit, burst = rate.Limit(n.RequestsPerSecond), n.Burst
			if burst < 1 {
				burst = 1
			}
		}
		baseURL := strings.TrimRight(n.BridgeServiceURL, "/")
		c.endpoints[n.NetworkID] = endpoint{url: baseURL, limiter: rate.NewLimiter(limit, burst)}
		if cfg.API == APIJSONRPC {
			c.jsonrpc[n.NetworkID] = NewJSONRPCClient(baseURL)
		}
	}

	meter := otel.Meter(meterName)
	requests, err := meter.Int64Counter("bridge_service_requests")
	if err != nil {
		logger.Warnf("failed to create bridge_service_requests counter: %s", err)
	}
	c.requests = requests

	return c, nil
}

func (c *Client) endpoint(networkID uint32) (endpoint, error) {
	ep, ok := c.endpoints[networkID]
	if !ok {
		return endpoint{}, fmt.Errorf("%w %d", ErrUnknownNetwork, networkID)
	}

	return ep, nil
}

// Bridges lists one page of the deposits made on networkID, most recent first.
// page starts at 1, a zero pageSize uses the configured one.
func (c *Client) Bridges(ctx context.Context, networkID, page, pageSize uint32) (*BridgesResponse, error) {
	const op = "bridgeservice.Bridges"
	if pageSize == 0 {
		pageSize = c.cfg.PageSize
	}
	query := url.Values{}
	query.Set("network_id", strconv.FormatUint(uint64(networkID), 10))
	if page > 0 {
		query.Set("page_number", strconv.FormatUint(uint64(page), 10))
		query.Set("page_size", strconv.FormatUint(uint64(pageSize), 10))
	}

	var res BridgesResponse
	if err := c.do(ctx, networkID, http.MethodGet, endpointBridges, query, nil, &res); err != nil {
		return nil, classify(op, err, types.KindChainRPCError)
	}

	return &res, nil
}

// L1InfoTreeIndex returns the first L1 info tree leaf including the deposit.
// It fails with ProofNotReady while the deposit is not in the tree yet.
func (c *Client) L1InfoTreeIndex(ctx context.Context, networkID, depositCount uint32) (uint32, error) {
	const op = "bridgeservice.L1InfoTreeIndex"
	if rpcClient, ok := c.jsonrpc[networkID]; ok {
		if err := c.wait(ctx, networkID); err != nil {
			return 0, err
		}
		c.count(ctx, endpointL1InfoTreeIndex, "jsonrpc")
		return rpcClient.L1InfoTreeIndexForBridge(networkID, depositCount)
	}

	query := url.Values{}
	query.Set("network_id", strconv.FormatUint(uint64(networkID), 10))
	query.Set("deposit_count", strconv.FormatUint(uint64(depositCount), 10))
	var res l1InfoTreeIndexResponse
	if err := c.do(ctx, networkID, http.MethodGet, endpointL1InfoTreeIndex, query, nil, &res); err != nil {
		return 0, classify(op, err, types.KindProofNotReady)
	}

	return res.Index, nil
}

// ClaimProof returns the exit roots proving the deposit against the given L1 info tree leaf.
// It fails with ProofNotReady while the indexer can not build it.
func (c *Client) ClaimProof(ctx context.Context, networkID, leafIndex, depositCount uint32) (*types.ClaimProof, error) {
	const op = "bridgeservice.ClaimProof"
	if rpcClient, ok := c.jsonrpc[networkID]; ok {
		if err := c.wait(ctx, networkID); err != nil {
			return nil, err
		}
		c.count(ctx, endpointClaimProof, "jsonrpc")
		res, err := rpcClient.ClaimProof(networkID, depositCount, leafIndex)
		if err != nil {
			return nil, err
		}
		return res.ClaimProof(networkID, depositCount, leafIndex), nil
	}

	query := url.Values{}
	query.Set("network_id", strconv.FormatUint(uint64(networkID), 10))
	query.Set("leaf_index", strconv.FormatUint(uint64(leafIndex), 10))
	query.Set("deposit_count", strconv.FormatUint(uint64(depositCount), 10))
	var res ClaimProofResponse
	if err := c.do(ctx, networkID, http.MethodGet, endpointClaimProof, query, nil, &res); err != nil {
		return nil, classify(op, err, types.KindProofNotReady)
	}

	return res.ClaimProof(networkID, depositCount, leafIndex), nil
}

// Claims lists one page of the claims executed on networkID
func (c *Client) Claims(ctx context.Context, networkID, page, pageSize uint32) (*ClaimsResponse, error) {
	const op = "bridgeservice.Claims"
	if pageSize == 0 {
		pageSize = c.cfg.PageSize
	}
	query := url.Values{}
	query.Set("network_id", strconv.FormatUint(uint64(networkID), 10))
	if page > 0 {
		query.Set("page_number", strconv.FormatUint(uint64(page), 10))
		query.Set("page_size", strconv.FormatUint(uint64(pageSize), 10))
	}
	var res ClaimsResponse
	if err := c.do(ctx, networkID, http.MethodGet, endpointClaims, query, nil, &res); err != nil {
		return nil, classify(op, err, types.KindChainRPCError)
	}

	return &res, nil
}

// SponsorClaim asks the bridge service of the destination network to send the claim
func (c *Client) SponsorClaim(ctx context.Context, networkID uint32, claim SponsorClaimRequest) error {
	const op = "bridgeservice.SponsorClaim"
	if rpcClient, ok := c.jsonrpc[networkID]; ok {
		if err := c.wait(ctx, networkID); err != nil {
			return err
		}
		c.count(ctx, endpointSponsorClaim, "jsonrpc")
		return rpcClient.SponsorClaim(claim)
	}
	body, err := json.Marshal(claim)
	if err != nil {
		return err
	}
	if err := c.do(ctx, networkID, http.MethodPost, endpointSponsorClaim, nil, body, nil); err != nil {
		return classify(op, err, types.KindOther)
	}

	return nil
}

// SponsoredClaimStatus returns the status of a claim sponsored through SponsorClaim
func (c *Client) SponsoredClaimStatus(
	ctx context.Context, networkID uint32, globalIndex *big.Int,
) (SponsoredClaimStatus, error) {
	const op = "bridgeservice.SponsoredClaimStatus"
	if rpcClient, ok := c.jsonrpc[networkID]; ok {
		if err := c.wait(ctx, networkID); err != nil {
			return "", err
		}
		c.count(ctx, endpointSponsoredClaimStatus, "jsonrpc")
		return rpcClient.GetSponsoredClaimStatus(globalIndex)
	}
	query := url.Values{}
	query.Set("global_index", globalIndex.String())
	query.Set("network_id", strconv.FormatUint(uint64(networkID), 10))
	var res sponsoredClaimStatusResponse
	if err := c.do(ctx, networkID, http.MethodGet, endpointSponsoredClaimStatus, query, nil, &res); err != nil {
		return "", classify(op, err, types.KindOther)
	}

	return res.Status, nil
}

func (c *Client) wait(ctx context.Context, networkID uint32) error {
	ep, err := c.endpoint(networkID)
	if err != nil {
		return err
	}

	return waitLimiter(ctx, ep.limiter)
}

// waitLimiter reports a wait that can not finish before the deadline as the deadline itself
func waitLimiter(ctx context.Context, limiter *rate.Limiter) error {
	if err := limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fmt.Errorf("%w: %s", context.DeadlineExceeded, err)
	}

	return nil
}

func (c *Client) count(ctx context.Context, name, status string) {
	if c.requests == nil {
		return
	}
	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", name),
		attribute.String("status", status),
	))
}

func (c *Client) do(
	ctx context.Context, networkID uint32, method, name string, query url.Values, body []byte, out interface{},
) error {
	ep, err := c.endpoint(networkID)
	if err != nil {
		return err
	}
	if err := waitLimiter(ctx, ep.limiter); err != nil {
		return err
	}

	target := ep.url + basePath + "/" + name
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reqBody interface{}
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debugf("%s %s", method, target)
	resp, err := c.http.Do(req)
	if err != nil {
		c.count(ctx, name, "error")
		return err
	}
	defer resp.Body.Close()
	c.count(ctx, name, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{Endpoint: name, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", name, err)
	}

	return nil
}

// classify maps a failed call into the claim error taxonomy. notFound is the
// kind of a 404, the indexer answers it for data it has not processed yet.
func classify(op string, err error, notFound types.ErrorKind) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, ErrUnknownNetwork) {
		return types.NewError(types.KindOther, op, err)
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode == http.StatusNotFound:
			return types.NewError(notFound, op, err)
		case httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError:
			return types.NewError(types.KindChainRPCError, op, err)
		default:
			return types.NewError(types.KindOther, op, err)
		}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return types.NewError(types.KindOther, op, err)
	}

	return types.NewError(types.KindChainRPCError, op, err)
}

// leveledLogger adapts log.Logger to retryablehttp.LeveledLogger
type leveledLogger struct {
	logger *log.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
