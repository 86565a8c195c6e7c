package providers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

const (
	Webhooks = "WEBHOOKS"
)

// BaseProvider contains common fields and methods
type BaseProvider struct {
	Name   string
	Client *http.Client
	Logger *logging.Logger
}

func NewBaseProvider(name string, timeout time.Duration, logger *logging.Logger) *BaseProvider {
	return &BaseProvider{
		Name:   name,
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// MakeRequest sends body as JSON. The caller owns the response body.
func (p *BaseProvider) MakeRequest(ctx context.Context, method, url string, body []byte, extraHeaders map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	// Allows for overwriting pre-set keys
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	if p.Logger != nil {
		p.Logger.WithFields(logrus.Fields{
			"provider": p.Name,
			"method":   method,
			"url":      url,
		}).Debug("external request")
	}

	return p.Client.Do(req)
}

// Provider is an interface that all specific providers must implement
type Provider interface {
	GetName() string
	GetClient() *http.Client
}

func (bp *BaseProvider) GetName() string         { return bp.Name }
func (bp *BaseProvider) GetClient() *http.Client { return bp.Client }
