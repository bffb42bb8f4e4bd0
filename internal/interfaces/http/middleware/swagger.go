package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
)

// SwaggerConfig holds configuration for Swagger endpoint protection
type SwaggerConfig struct {
	Enabled    bool
	AllowedIPs []string // single IPs or CIDRs, empty = allow all
}

// SwaggerProtection answers 404 on the documentation routes when disabled.
// With an allowlist, clients outside it get 403. Unparsable entries are
// dropped, so a list of only bad entries denies everyone.
func SwaggerProtection(cfg SwaggerConfig) gin.HandlerFunc {
	allowlist := parseAllowlist(cfg.AllowedIPs)
	restricted := len(cfg.AllowedIPs) > 0

	return func(c *gin.Context) {
		switch {
		case !cfg.Enabled:
			c.AbortWithStatusJSON(http.StatusNotFound,
				dto.NewErrorResponse(dto.ErrCodeNotFound, "La documentation de l'API n'est pas disponible."))
		case restricted && !allowed(allowlist, c.ClientIP()):
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Accès à la documentation de l'API restreint."))
		default:
			c.Next()
		}
	}
}

// parseAllowlist turns IPs and CIDRs into prefixes; a bare IP is a full-length prefix
func parseAllowlist(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if p, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return prefixes
}

func allowed(allowlist []netip.Prefix, clientIP string) bool {
	addr, err := netip.ParseAddr(clientIP)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range allowlist {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
