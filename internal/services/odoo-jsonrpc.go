package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"sync/atomic"
	"time"

	"odooclient/entity"
	"odooclient/internal/config"
	"odooclient/internal/lib/sl"
)

// JsonRpcClient talks to the /jsonrpc endpoint. Authentication is
// lazy: the first object call authenticates when no uid is held yet.
type JsonRpcClient struct {
	url      string
	db       string
	username string
	password string
	uid      int64
	client   *http.Client
	nextID   atomic.Int64
	log      *slog.Logger
}

func NewJsonRpcClient(conf *config.Config, log *slog.Logger) (*JsonRpcClient, error) {
	if conf.Odoo.Url == "" {
		return nil, fmt.Errorf("odoo url is not configured")
	}

	return &JsonRpcClient{
		url:      conf.Odoo.Url,
		db:       conf.Odoo.Db,
		username: conf.Odoo.Username,
		password: conf.Secret(),
		client: &http.Client{
			Timeout: time.Duration(conf.Odoo.Timeout) * time.Second,
		},
		log: log.With(sl.Module("odoo.jsonrpc")),
	}, nil
}

func (c *JsonRpcClient) call(service, method string, args []interface{}) (json.RawMessage, error) {
	if err := Acquire(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	request := entity.RpcRequest{
		JsonRpc: "2.0",
		Method:  "call",
		Params: entity.RpcParams{
			Service: service,
			Method:  method,
			Args:    args,
		},
		ID: c.nextID.Add(1),
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	fullURL, err := buildURL(c.url, "jsonrpc")
	if err != nil {
		return nil, err
	}

	log := c.log.With(
		slog.String("service", service),
		slog.String("rpc_method", method),
	)
	t := time.Now()

	resp, err := c.client.Post(fullURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.With(sl.Err(err)).Debug("rpc call failed")
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.With(
		slog.Duration("duration", time.Since(t)),
		slog.Int("status", resp.StatusCode),
	).Debug("rpc call")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var response entity.RpcResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("odoo error: %s", response.Error.Text())
	}

	return response.Result, nil
}

// Authenticate exchanges the configured credentials for a numeric uid.
// Odoo returns false instead of an id on bad credentials.
func (c *JsonRpcClient) Authenticate() (int64, error) {
	result, err := c.call("common", "authenticate", []interface{}{
		c.db, c.username, c.password, map[string]interface{}{},
	})
	if err != nil {
		return 0, err
	}

	var raw interface{}
	if err := json.Unmarshal(result, &raw); err != nil {
		return 0, fmt.Errorf("decode uid: %w", err)
	}

	uid, ok := raw.(float64)
	if !ok || uid <= 0 {
		return 0, fmt.Errorf("authentication failed")
	}

	c.uid = int64(uid)
	c.log.With(slog.Int64("uid", c.uid)).Debug("authenticated")
	return c.uid, nil
}

func (c *JsonRpcClient) Version() (string, error) {
	result, err := c.call("common", "version", []interface{}{})
	if err != nil {
		return "", err
	}

	var info entity.VersionInfo
	if err := json.Unmarshal(result, &info); err != nil {
		return "", fmt.Errorf("decode version: %w", err)
	}
	return info.ServerVersion, nil
}

func (c *JsonRpcClient) ExecuteKw(model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	if c.uid == 0 {
		if _, err := c.Authenticate(); err != nil {
			return nil, err
		}
	}

	callArgs := []interface{}{c.db, c.uid, c.password, model, method, args}
	if kwargs != nil {
		callArgs = append(callArgs, kwargs)
	}

	result, err := c.call("object", "execute_kw", callArgs)
	if err != nil {
		return nil, err
	}

	var decoded interface{}
	if err := json.Unmarshal(result, &decoded); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return decoded, nil
}

func buildURL(base string, paths ...string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	// Join additional path segments cleanly
	allPaths := append([]string{u.Path}, paths...)
	u.Path = path.Join(allPaths...)

	return u.String(), nil
}
