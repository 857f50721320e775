package handler

import (
	"agency/config"
	"agency/di"
	"agency/shared/logger"
	"agency/transport/http"
	nethttp "net/http"
	"sync"
)

var (
	server *http.HTTP
	once   sync.Once
)

func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
