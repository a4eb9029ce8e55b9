package gemini

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/llm"
)

// Config for the Gemini client.
type Config struct {
	APIKey         string        // if empty, falls back to env GEMINI_API_KEY
	BaseURL        string        // default https://generativelanguage.googleapis.com
	Model          string        // e.g., "gemini-1.5-flash"
	Timeout        time.Duration // http client timeout; documents are large, keep generous
	MaxPromptChars int           // source-text bound embedded in the prompt
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = llm.DefaultMaxPromptChars
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Available reports whether a credential is configured. Absence is a valid
// state handled by the orchestrator, not a startup failure.
func (c *Client) Available() bool {
	return c.cfg.APIKey != ""
}
