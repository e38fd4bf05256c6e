package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"freight-quote-service/internal/geo"
	"freight-quote-service/internal/ports"
	"freight-quote-service/internal/refdata"
)

// NewRouter wires the handlers with their dependencies and returns the
// gin engine. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(tables refdata.Tables, provider ports.RouteProvider, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	h := &Handler{
		Tables:   tables,
		Index:    geo.NewIndex(tables.Boundaries),
		Provider: provider,
		Log:      log,
	}
	h.Register(r)

	return r
}
