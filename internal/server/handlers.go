package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/pdftext"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/store"
)

// ParseResponse is the envelope every parse call returns. A fully-failed
// extraction still answers success=true with a record of sentinels; only an
// unreadable document or an invalid upload produces success=false.
type ParseResponse struct {
	Success           bool               `json:"success"`
	Data              *extract.JobRecord `json:"data,omitempty"`
	Error             string             `json:"error,omitempty"`
	ExtractionSummary *ExtractionSummary `json:"extraction_summary,omitempty"`
}

// ExtractionSummary is derived by the boundary from the JobRecord.
type ExtractionSummary struct {
	FieldsExtracted int      `json:"fields_extracted"`
	TotalFields     int      `json:"total_fields"`
	MissingFields   []string `json:"missing_fields"`
	ExtractionTier  string   `json:"extraction_tier"`
	Attempts        int      `json:"attempts"`
}

func (s *Service) parsePDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ParseResponse{Error: "missing multipart field 'file'"})
		return
	}

	maxBytes := int64(s.cfg.MaxUploadMB) << 20
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ParseResponse{
			Error: "file exceeds maximum upload size",
		})
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	_, extOK := constants.AllowedExtensions[ext]
	_, typeOK := constants.AllowedContentTypes[contentType]
	if !extOK && !typeOK {
		c.JSON(http.StatusBadRequest, ParseResponse{Error: "only PDF uploads are accepted"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ParseResponse{Error: "could not read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ParseResponse{Error: "could not read upload"})
		return
	}
	if int64(len(data)) > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ParseResponse{
			Error: "file exceeds maximum upload size",
		})
		return
	}

	ctx := c.Request.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	result, err := s.parser.Parse(ctx, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		var extErr *pdftext.ExtractionError
		if errors.As(err, &extErr) {
			s.logger.Warn("server.parse.unreadable_document",
				"filename", fileHeader.Filename, "error", err)
			c.JSON(http.StatusUnprocessableEntity, ParseResponse{
				Error: "could not extract text from the document",
			})
			return
		}
		s.logger.Error("server.parse.failed", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, ParseResponse{Error: "internal error"})
		return
	}

	s.saveHistory(c, fileHeader.Filename, result)

	c.JSON(http.StatusOK, ParseResponse{
		Success:           true,
		Data:              &result.Record,
		ExtractionSummary: summarize(result),
	})
}

// saveHistory persists the parse best-effort: history is an operational
// convenience and must never fail a parse response.
func (s *Service) saveHistory(c *gin.Context, filename string, result extract.Result) {
	if s.parses == nil {
		return
	}
	row := store.ParseRow{
		Filename:  filepath.Base(filename),
		Tier:      string(result.Tier),
		Attempts:  result.Attempts,
		Record:    result.Record,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.parses.SaveParse(c.Request.Context(), row); err != nil {
		s.logger.Warn("server.parse.history_save_failed", "filename", filename, "error", err)
	}
}

func summarize(result extract.Result) *ExtractionSummary {
	missing := result.Record.MissingFields()
	if missing == nil {
		missing = []string{}
	}
	return &ExtractionSummary{
		FieldsExtracted: len(constants.SchemaFields) - len(missing),
		TotalFields:     len(constants.SchemaFields),
		MissingFields:   missing,
		ExtractionTier:  string(result.Tier),
		Attempts:        result.Attempts,
	}
}

func (s *Service) listParses(c *gin.Context) {
	rows, err := s.parses.ListParses(c.Request.Context(), 100)
	if err != nil {
		s.logger.Error("server.parses.list_failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list parses"})
		return
	}
	if rows == nil {
		rows = []store.ParseRow{}
	}
	c.JSON(http.StatusOK, gin.H{"parses": rows})
}

func (s *Service) exportParses(c *gin.Context) {
	data, err := s.exporter.ParsesXLSX(c.Request.Context(), 1000)
	if err != nil {
		s.logger.Error("server.parses.export_failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not export parses"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="parses.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
