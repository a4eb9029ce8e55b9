package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/common"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/export"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/store"
)

// DocumentParser is the extraction core as the boundary sees it.
type DocumentParser interface {
	Parse(ctx context.Context, r io.ReaderAt, size int64) (extract.Result, error)
}

// Service is the HTTP boundary: upload validation, response envelopes, and
// parse-history endpoints. Extraction itself stays in the core; the boundary
// only derives the summary from the record it gets back.
type Service struct {
	logger   *slog.Logger
	cfg      common.ServerConfig
	parser   DocumentParser
	parses   store.ParseRepository
	exporter *export.Service
}

func NewService(logger *slog.Logger, cfg common.ServerConfig, parser DocumentParser, parses store.ParseRepository, exporter *export.Service) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:   logger,
		cfg:      cfg,
		parser:   parser,
		parses:   parses,
		exporter: exporter,
	}
}

// Router builds the gin engine. Each request runs on its own goroutine, so
// one document's retry backoff never stalls another upload.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/parse-pdf", s.parsePDF)
		v1.GET("/parses", s.listParses)
		v1.GET("/parses/export", s.exportParses)
	}
	return r
}

func (s *Service) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
