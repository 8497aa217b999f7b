/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package dap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/bf2py/bf2debug/pkg/resiliency"
)

const (
	// How long Start waits for the message pumps after the transports were closed.
	// A pump blocked reading from a standard stream may not notice the close.
	DefaultShutdownTimeout = 2 * time.Second
)

// ProxyConfig contains configuration options for the DAP proxy.
type ProxyConfig struct {
	// Handler is an optional message handler for intercepting and modifying messages.
	// If nil, messages are forwarded unchanged.
	Handler MessageHandler

	// Logger is the logger for the proxy. If nil, logging is disabled.
	Logger logr.Logger

	// ShutdownTimeout overrides DefaultShutdownTimeout if positive.
	ShutdownTimeout time.Duration
}

// Proxy forwards DAP messages between the editor and the debug server.
type Proxy struct {
	// upstream is the transport to the editor
	upstream Transport

	// downstream is the transport to the debug server
	downstream Transport

	handler         MessageHandler
	shutdownTimeout time.Duration
	log             logr.Logger

	// wg tracks running goroutines for graceful shutdown
	wg sync.WaitGroup

	// startOnce ensures Start is only called once
	startOnce sync.Once
}

// NewProxy creates a new DAP proxy with the given transports and configuration.
func NewProxy(upstream, downstream Transport, config ProxyConfig) *Proxy {
	log := config.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	return &Proxy{
		upstream:        upstream,
		downstream:      downstream,
		handler:         ComposeHandlers(config.Handler),
		shutdownTimeout: shutdownTimeout,
		log:             log,
	}
}

// Start runs the message pumps and blocks until either side disconnects or the context is cancelled.
// Both transports are closed when Start returns. Returns nil on clean shutdown.
func (p *Proxy) Start(ctx context.Context) error {
	startErr := ErrTransportClosed
	p.startOnce.Do(func() {
		startErr = p.run(ctx)
	})
	return startErr
}

func (p *Proxy) run(ctx context.Context) error {
	pumpCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)
	p.wg.Add(2)

	// Editor -> debug server
	go func() {
		defer p.wg.Done()
		errChan <- p.pump(pumpCtx, p.upstream, p.downstream, Upstream)
	}()

	// Debug server -> editor
	go func() {
		defer p.wg.Done()
		errChan <- p.pump(pumpCtx, p.downstream, p.upstream, Downstream)
	}()

	var result error
	select {
	case result = <-errChan:
		if result != nil {
			p.log.Info("Proxy terminating due to error", "error", result)
		} else {
			p.log.V(1).Info("Proxy terminating, peer disconnected")
		}
	case <-ctx.Done():
		p.log.V(1).Info("Proxy terminating due to context cancellation")
		result = ctx.Err()
	}

	cancel()

	// Close transports to unblock readers
	if closeErr := p.upstream.Close(); closeErr != nil {
		p.log.V(1).Info("Error closing upstream transport", "error", closeErr)
	}
	if closeErr := p.downstream.Close(); closeErr != nil {
		p.log.V(1).Info("Error closing downstream transport", "error", closeErr)
	}

	if !resiliency.RunWithTimeout(p.wg.Wait, p.shutdownTimeout) {
		p.log.V(1).Info("Message pumps did not stop in time", "timeout", p.shutdownTimeout)
	}

	return filterContextError(result, ctx, p.log)
}

func (p *Proxy) pump(ctx context.Context, src, dst Transport, direction Direction) error {
	for {
		msg, readErr := src.ReadMessage()
		if readErr != nil {
			if ctx.Err() != nil || IsDisconnect(readErr) {
				return nil
			}
			return fmt.Errorf("%s read failed: %w", direction, readErr)
		}

		p.log.V(1).Info("Forwarding message", "direction", direction.String(), "message", msg.String())

		modified, forward := p.handler(msg, direction)
		if !forward {
			p.log.V(1).Info("Message consumed by handler", "message", msg.String())
			continue
		}
		if modified != nil {
			msg = modified
		}

		if writeErr := dst.WriteMessage(msg); writeErr != nil {
			if ctx.Err() != nil || IsDisconnect(writeErr) {
				return nil
			}
			return fmt.Errorf("%s write failed: %w", direction, writeErr)
		}
	}
}
