package server

import (
	nethttp "net/http"

	"link-tracker/internal/conf"

	"github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server serving the chi router under every path.
func NewHTTPServer(c conf.Server, handler nethttp.Handler) *http.Server {
	var opts = []http.ServerOption{
		http.Address(c.Addr),
	}
	if c.Timeout.Duration > 0 {
		opts = append(opts, http.Timeout(c.Timeout.Duration))
	}
	srv := http.NewServer(opts...)
	srv.HandlePrefix("/", handler)
	return srv
}
