package services

import (
	"context"
	"fmt"
	"log/slog"

	"odooclient/internal/config"
	"odooclient/internal/lib/sl"

	"github.com/kolo/xmlrpc"
)

// XmlRpcClient talks to the /xmlrpc/2/common and /xmlrpc/2/object
// endpoints, the interface the classic scripts use.
type XmlRpcClient struct {
	db       string
	username string
	password string
	uid      int64
	common   *xmlrpc.Client
	object   *xmlrpc.Client
	log      *slog.Logger
}

func NewXmlRpcClient(conf *config.Config, log *slog.Logger) (*XmlRpcClient, error) {
	if conf.Odoo.Url == "" {
		return nil, fmt.Errorf("odoo url is not configured")
	}

	commonURL, err := buildURL(conf.Odoo.Url, "xmlrpc", "2", "common")
	if err != nil {
		return nil, err
	}
	objectURL, err := buildURL(conf.Odoo.Url, "xmlrpc", "2", "object")
	if err != nil {
		return nil, err
	}

	common, err := xmlrpc.NewClient(commonURL, nil)
	if err != nil {
		return nil, fmt.Errorf("common endpoint: %w", err)
	}
	object, err := xmlrpc.NewClient(objectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("object endpoint: %w", err)
	}

	return &XmlRpcClient{
		db:       conf.Odoo.Db,
		username: conf.Odoo.Username,
		password: conf.Secret(),
		common:   common,
		object:   object,
		log:      log.With(sl.Module("odoo.xmlrpc")),
	}, nil
}

func (c *XmlRpcClient) Authenticate() (int64, error) {
	if err := Acquire(context.Background()); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	var result interface{}
	err := c.common.Call("authenticate", []interface{}{
		c.db, c.username, c.password, map[string]interface{}{},
	}, &result)
	if err != nil {
		return 0, fmt.Errorf("authenticate: %w", err)
	}

	uid, ok := toInt64(result)
	if !ok || uid <= 0 {
		return 0, fmt.Errorf("authentication failed")
	}

	c.uid = uid
	c.log.With(slog.Int64("uid", uid)).Debug("authenticated")
	return uid, nil
}

func (c *XmlRpcClient) Version() (string, error) {
	if err := Acquire(context.Background()); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	var result map[string]interface{}
	if err := c.common.Call("version", nil, &result); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}

	version, _ := result["server_version"].(string)
	return version, nil
}

func (c *XmlRpcClient) ExecuteKw(model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	if c.uid == 0 {
		if _, err := c.Authenticate(); err != nil {
			return nil, err
		}
	}

	if err := Acquire(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	callArgs := []interface{}{c.db, c.uid, c.password, model, method, args}
	if kwargs != nil {
		callArgs = append(callArgs, kwargs)
	}

	var result interface{}
	if err := c.object.Call("execute_kw", callArgs, &result); err != nil {
		return nil, fmt.Errorf("execute_kw %s.%s: %w", model, method, err)
	}
	return result, nil
}
