package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/llm"
)

// generateContent request/response shapes, reduced to the parts we use.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// ExtractFields implements extract.FieldExtractor against the Gemini
// generateContent endpoint in JSON response mode. Outcomes map onto the
// orchestrator's taxonomy: missing credential -> extract.ErrModelUnavailable,
// safety block -> *extract.BlockedError, unparseable reply ->
// *extract.ResponseError, anything else transient.
func (c *Client) ExtractFields(ctx context.Context, text string) (extract.JobRecord, []byte, error) {
	if !c.Available() {
		return extract.JobRecord{}, nil, extract.ErrModelUnavailable
	}

	rid := uuid.New().String()
	start := time.Now()
	prompt := llm.BuildPrompt(text, c.cfg.MaxPromptChars)

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(text),
		"prompt_len", len(prompt),
	)

	body := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.JobRecord{}, nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.JobRecord{}, raw, &extract.ResponseError{Cause: fmt.Errorf("decode gemini response: %w", err)}
	}

	payload, blockReason := responseText(resp)
	if blockReason != "" {
		c.log.Warn("llm.extract.blocked",
			"req_id", rid, "reason", blockReason,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.JobRecord{}, raw, &extract.BlockedError{Reason: blockReason}
	}
	if payload == "" {
		c.log.Error("llm.extract.empty_content",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.JobRecord{}, raw, &extract.ResponseError{Cause: fmt.Errorf("no content in gemini response")}
	}

	cleaned, _, err := llm.SanitizeFields([]byte(payload), c.log)
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err, "content", payload,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.JobRecord{}, []byte(payload), &extract.ResponseError{Cause: err}
	}
	if err := llm.ValidateJobRecordJSON(cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.JobRecord{}, cleaned, &extract.ResponseError{Cause: err}
	}

	var rec extract.JobRecord
	if err := json.Unmarshal(cleaned, &rec); err != nil {
		return extract.JobRecord{}, cleaned, &extract.ResponseError{Cause: fmt.Errorf("unmarshal fields: %w", err)}
	}
	// Snippet comes from the untruncated source, independent of the prompt
	// bound, which may be shorter.
	rec.RawText = extract.Truncate(text, constants.RawTextLimit)

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"job_title", rec.JobTitle,
		"department", rec.Department,
		"vacancies", rec.Vacancies,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, cleaned, nil
}

// responseText pulls the first candidate's text and the block reason, if
// any. A SAFETY finish with no content counts as blocked even when
// promptFeedback is absent.
func responseText(resp generateResponse) (string, string) {
	if resp.PromptFeedback.BlockReason != "" {
		return "", resp.PromptFeedback.BlockReason
	}
	for _, cand := range resp.Candidates {
		var b strings.Builder
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			return text, ""
		}
		if cand.FinishReason == "SAFETY" {
			return "", "SAFETY"
		}
	}
	return "", ""
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini http error: %w", err)
	}
	defer func(rc io.ReadCloser) {
		if cerr := rc.Close(); cerr != nil {
			c.log.Warn("gemini response body close error", "error", cerr)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
