package resolver

import (
	"fmt"
	"net"
	"strings"

	"banana-bank-go/internal/models"
)

const (
	// DemoBaseURL is the placeholder base URL reported in demo mode.
	DemoBaseURL = "demo://local"

	// DefaultBackendPort is the port the payment backend listens on in
	// every development setup this resolver targets.
	DefaultBackendPort = 4000

	// PlatformAndroid is special-cased: the Android emulator reaches the
	// host machine via the 10.0.2.2 loopback alias, not localhost.
	PlatformAndroid = "android"
)

// Resolve decides, from explicit environment signals only, whether
// payment operations run in demo mode or against a real backend, and at
// which base URL. It is pure: callers are expected to re-resolve on
// every payment call so signal changes take effect without a restart.
//
// Priority order, first match wins:
//  1. explicit demo flag
//  2. explicit base URL (trailing slashes stripped)
//  3. dev host: raw IPv4 -> real backend on that host; any other
//     non-localhost domain (e.g. a tunnel) -> demo, since a tunnelled
//     client cannot reach a backend on the developer's machine
//  4. platform default: emulator loopback alias on android, localhost
//     elsewhere
func Resolve(cfg models.ResolverConfig) models.APIResolution {
	if cfg.DemoMode {
		return models.APIResolution{Demo: true, BaseURL: DemoBaseURL}
	}

	if cfg.APIURL != "" {
		return models.APIResolution{BaseURL: normalizeBaseURL(cfg.APIURL)}
	}

	if host := hostPart(cfg.DevHost); host != "" && host != "localhost" {
		if isIPv4(host) {
			return models.APIResolution{BaseURL: fmt.Sprintf("http://%s:%d", host, DefaultBackendPort)}
		}
		return models.APIResolution{Demo: true, BaseURL: DemoBaseURL}
	}

	host := "localhost"
	if cfg.Platform == PlatformAndroid {
		host = "10.0.2.2"
	}
	return models.APIResolution{BaseURL: fmt.Sprintf("http://%s:%d", host, DefaultBackendPort)}
}

func normalizeBaseURL(url string) string {
	return strings.TrimRight(url, "/")
}

// hostPart strips an optional ":port" suffix from a dev host value.
func hostPart(devHost string) string {
	if devHost == "" {
		return ""
	}
	host, _, _ := strings.Cut(devHost, ":")
	return host
}

func isIPv4(host string) bool {
	ip := net.ParseIP(host)
	return ip != nil && ip.To4() != nil
}
