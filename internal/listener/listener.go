// Package listener provides the security layers the HTTP server listens through.
package listener

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/workflow-tracker-server/internal/config"
	"github.com/dtroode/workflow-tracker-server/internal/model"
)

var (
	_ model.SecurityLayer = (*TLS)(nil)
	_ model.SecurityLayer = (*Plain)(nil)
)

// FromConfig picks the TLS layer when HTTPS is enabled and the plain one otherwise.
func FromConfig(cfg config.HTTP) model.SecurityLayer {
	if cfg.EnableHTTPS {
		return NewTLS(cfg.CertFileName, cfg.PrivateKeyFileName)
	}
	return NewPlain()
}

// TLS listens with a certificate loaded from disk on every Listen call.
type TLS struct {
	certFileName       string
	privateKeyFileName string
}

// NewTLS creates a TLS layer for the given PEM certificate and key files.
func NewTLS(certFileName, privateKeyFileName string) *TLS {
	return &TLS{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen opens a TLS listener on addr.
func (l *TLS) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	return tls.Listen(protocol, addr, tlsConfig)
}

// Plain listens without encryption.
type Plain struct{}

func NewPlain() *Plain {
	return &Plain{}
}

// Listen opens an unencrypted listener on addr.
func (l *Plain) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
