package handler

import (
	"corais/config"
	"corais/di"
	"corais/shared/logger"
	"net/http"
	"sync"

	httpTransport "corais/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The service graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
