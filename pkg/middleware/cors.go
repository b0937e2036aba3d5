package middleware

import (
	"net/http"
)

const wildcardOrigin = "*"

type corsPolicy struct {
	allowAll bool
	origins  map[string]bool
}

func newCorsPolicy(allowedOrigins []string) corsPolicy {
	policy := corsPolicy{origins: make(map[string]bool, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		if origin == wildcardOrigin {
			policy.allowAll = true
		}
		policy.origins[origin] = true
	}
	return policy
}

// allowOrigin devolve o valor de Access-Control-Allow-Origin, vazio quando a
// origem não é permitida
func (p corsPolicy) allowOrigin(origin string) string {
	if p.allowAll {
		return wildcardOrigin
	}
	if origin != "" && p.origins[origin] {
		return origin
	}
	return ""
}

// Cors aplica a mesma política a todas as rotas e responde o preflight
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := newCorsPolicy(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowed := policy.allowOrigin(r.Header.Get("Origin")); allowed != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowed)
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With, X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				if allowed != wildcardOrigin {
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
