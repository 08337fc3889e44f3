package middleware

import (
	"corais/shared/constant"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/rs/zerolog/log"
)

// parseTrustedProxies accepts bare addresses and CIDR ranges. Bad entries are
// logged and skipped.
func parseTrustedProxies(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == constant.Empty {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				log.Warn().Err(err).Str("entry", entry).Msg("ignoring trusted proxy")

				continue
			}

			prefixes = append(prefixes, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("ignoring trusted proxy")

			continue
		}

		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes
}

func (a *appMiddleware) trusted(addr netip.Addr) bool {
	addr = addr.Unmap()

	for _, prefix := range a.proxies {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}

// clientIP is the peer address unless the peer is a trusted proxy. Behind a
// trusted proxy it walks X-Forwarded-For from the right and returns the first
// hop that is not itself trusted, then falls back to X-Real-IP.
func (a *appMiddleware) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)

	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !a.trusted(peerAddr) {
		return peer
	}

	if xff := r.Header.Values(constant.RequestHeaderForwardedFor); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")

		for i := len(hops) - 1; i >= 0; i-- {
			hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				break
			}

			if !a.trusted(hop) {
				return hop.Unmap().String()
			}
		}
	}

	if xri, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP))); err == nil {
		return xri.Unmap().String()
	}

	return peer
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}
