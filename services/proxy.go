// ABOUTME: SSH+SOCKS5 egress tunnel for outbound provider calls
// ABOUTME: Parses ssh+socks5://user@host:port?private-key=/path and builds a lazy dialer

package services

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	proxy "github.com/cloudfoundry/socks5-proxy"
)

// DialContextFunc matches http.Transport.DialContext
type DialContextFunc func(ctx context.Context, network, address string) (net.Conn, error)

// proxySettings holds the parsed parts of an ssh+socks5 proxy URL
type proxySettings struct {
	username string
	host     string
	keyPath  string
}

// parseProxyURL validates an ssh+socks5 proxy URL
func parseProxyURL(allProxy string) (*proxySettings, error) {
	// Strip ssh+ prefix if present
	allProxy = strings.TrimPrefix(allProxy, "ssh+")

	proxyURL, err := url.Parse(allProxy)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}
	if proxyURL.Scheme != "socks5" {
		return nil, fmt.Errorf("unsupported proxy scheme %q: expected ssh+socks5", proxyURL.Scheme)
	}
	if proxyURL.Host == "" {
		return nil, fmt.Errorf("proxy URL is missing a host")
	}

	queryMap, err := url.ParseQuery(proxyURL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy query params: %w", err)
	}

	keyPath := queryMap.Get("private-key")
	if keyPath == "" {
		return nil, fmt.Errorf("proxy URL missing required 'private-key' query param")
	}

	username := ""
	if proxyURL.User != nil {
		username = proxyURL.User.Username()
	}

	return &proxySettings{
		username: username,
		host:     proxyURL.Host,
		keyPath:  keyPath,
	}, nil
}

// NewProxyDialContext creates a dial function that tunnels connections
// through an SSH jump host exposing SOCKS5. The SSH session is opened on
// first use and reused afterwards.
func NewProxyDialContext(allProxy string) (DialContextFunc, error) {
	settings, err := parseProxyURL(allProxy)
	if err != nil {
		return nil, err
	}

	proxySSHKey, err := os.ReadFile(settings.keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading SSH private key %s: %w", settings.keyPath, err)
	}

	socks5Proxy := proxy.NewSocks5Proxy(proxy.NewHostKey(), log.Default(), 1*time.Minute)
	slog.Info("Provider egress via SSH+SOCKS5 proxy", "host", settings.host, "user", settings.username)

	var (
		dialer proxy.DialFunc
		mut    sync.RWMutex
	)

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		mut.RLock()
		d := dialer
		mut.RUnlock()

		if d != nil {
			return d(network, address)
		}

		mut.Lock()
		defer mut.Unlock()
		if dialer == nil {
			proxyDialer, err := socks5Proxy.Dialer(settings.username, string(proxySSHKey), settings.host)
			if err != nil {
				return nil, fmt.Errorf("error creating SOCKS5 dialer: %w", err)
			}
			dialer = proxyDialer
		}
		return dialer(network, address)
	}, nil
}
