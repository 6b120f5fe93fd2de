/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"slices"

	"github.com/spf13/pflag"
)

// ListenerBuilder creates the listener of the API server. Use NewListener to get one.
type ListenerBuilder struct {
	logger       *slog.Logger
	network      string
	address      string
	tlsCrt       string
	tlsKey       string
	tlsProtocols []string
}

// NewListener returns a builder for a TCP listener.
func NewListener() *ListenerBuilder {
	return &ListenerBuilder{
		network: "tcp",
	}
}

// SetLogger sets the logger. This is mandatory.
func (b *ListenerBuilder) SetLogger(value *slog.Logger) *ListenerBuilder {
	b.logger = value
	return b
}

// SetFlags reads the address and TLS files from the flags added by AddListenerFlags. The name
// selects the listener, for example 'API' reads '--api-listener-address'. Flags that are missing
// are logged and skipped.
func (b *ListenerBuilder) SetFlags(flags *pflag.FlagSet, name string) *ListenerBuilder {
	if flags == nil {
		return b
	}
	setters := []struct {
		suffix string
		set    func(string) *ListenerBuilder
	}{
		{listenerAddrFlagSuffix, b.SetAddress},
		{listenerTLSCrtFlagSuffix, b.SetTLSCrt},
		{listenerTLSKeyFlagSuffix, b.SetTLSKey},
	}
	for _, setter := range setters {
		flag := listenerFlagName(name, setter.suffix)
		value, err := flags.GetString(flag)
		if err != nil {
			if b.logger != nil {
				b.logger.Error(
					"Failed to get flag value",
					slog.String("flag", flag),
					slog.String("error", err.Error()),
				)
			}
			continue
		}
		setter.set(value)
	}
	return b
}

// SetNetwork sets the network. This is optional and the default is TCP.
func (b *ListenerBuilder) SetNetwork(value string) *ListenerBuilder {
	b.network = value
	return b
}

// SetAddress sets the listen address. This is mandatory.
func (b *ListenerBuilder) SetAddress(value string) *ListenerBuilder {
	b.address = value
	return b
}

// SetTLSCrt sets the file that contains the certificate file, in PEM format.
func (b *ListenerBuilder) SetTLSCrt(value string) *ListenerBuilder {
	b.tlsCrt = value
	return b
}

// SetTLSKey sets the file that contains the key file, in PEM format.
func (b *ListenerBuilder) SetTLSKey(value string) *ListenerBuilder {
	b.tlsKey = value
	return b
}

// AddTLSProtocol adds a protocol that will be supported during the TLS negotiation.
func (b *ListenerBuilder) AddTLSProtocol(value string) *ListenerBuilder {
	b.tlsProtocols = append(b.tlsProtocols, value)
	return b
}

// Build creates the listener. When a certificate and key are configured the listener terminates
// TLS and advertises the added protocols.
func (b *ListenerBuilder) Build() (net.Listener, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	config, err := b.tlsConfig()
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen(b.network, b.address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s address '%s': %w", b.network, b.address, err)
	}
	b.logger.Info(
		"Listener created",
		slog.String("network", b.network),
		slog.String("address", listener.Addr().String()),
		slog.Bool("tls", config != nil),
	)
	if config != nil {
		listener = tls.NewListener(listener, config)
	}
	return listener, nil
}

func (b *ListenerBuilder) validate() error {
	switch {
	case b.logger == nil:
		return errors.New("logger is mandatory")
	case b.network == "":
		return errors.New("network is mandatory")
	case b.address == "":
		return errors.New("address is mandatory")
	case b.tlsCrt != "" && b.tlsKey == "":
		return errors.New("TLS key is mandatory when certificate is specified")
	case b.tlsKey != "" && b.tlsCrt == "":
		return errors.New("TLS certificate is mandatory when key is specified")
	}
	return nil
}

// tlsConfig returns nil when the listener is plain text
func (b *ListenerBuilder) tlsConfig() (*tls.Config, error) {
	if b.tlsCrt == "" {
		return nil, nil
	}
	pair, err := tls.LoadX509KeyPair(b.tlsCrt, b.tlsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS key pair '%s' and '%s': %w", b.tlsCrt, b.tlsKey, err)
	}
	b.logger.Info(
		"Loaded TLS key and certificate",
		slog.String("key", b.tlsKey),
		slog.String("crt", b.tlsCrt),
	)
	return &tls.Config{
		Certificates: []tls.Certificate{pair},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   slices.Clone(b.tlsProtocols),
	}, nil
}

// Listener names:
const (
	APIListener = "API"
)

// Default listener addresses:
const (
	APIAddress = "localhost:8080"
)
