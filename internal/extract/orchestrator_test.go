package extract_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
)

// stubExtractor scripts the generative tier: one entry per call, nil meaning
// success.
type stubExtractor struct {
	available bool
	script    []error
	record    extract.JobRecord
	calls     int
}

func (s *stubExtractor) Available() bool { return s.available }

func (s *stubExtractor) ExtractFields(_ context.Context, _ string) (extract.JobRecord, []byte, error) {
	var err error
	if s.calls < len(s.script) {
		err = s.script[s.calls]
	}
	s.calls++
	if err != nil {
		return extract.JobRecord{}, nil, err
	}
	return s.record, nil, nil
}

// sleepSpy records backoff waits without sleeping.
type sleepSpy struct {
	waits  []time.Duration
	cancel bool
}

func (s *sleepSpy) sleep(_ context.Context, d time.Duration) bool {
	s.waits = append(s.waits, d)
	return !s.cancel
}

func modelRecord() extract.JobRecord {
	return extract.JobRecord{
		JobTitle:            "Junior Engineer",
		Department:          "Railway Recruitment Board",
		Vacancies:           "750",
		Eligibility:         constants.Sentinel,
		Salary:              constants.Sentinel,
		ApplicationDeadline: "2025-10-15",
		ApplicationURL:      "https://www.rrbapply.gov.in",
		RawText:             "snippet",
	}
}

func newOrchestrator(t *testing.T, model extract.FieldExtractor, spy *sleepSpy) *extract.Orchestrator {
	t.Helper()
	cfg := extract.Config{}
	if spy != nil {
		cfg.Sleep = spy.sleep
	}
	return extract.NewOrchestrator(nil, cfg, nil, model, nil)
}

func TestOrchestrator_ModelSuccessFirstAttempt(t *testing.T) {
	stub := &stubExtractor{available: true, record: modelRecord()}
	spy := &sleepSpy{}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierModel, res.Tier)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, modelRecord(), res.Record)
	assert.Empty(t, spy.waits)
}

func TestOrchestrator_NilModelSkipsSchedule(t *testing.T) {
	spy := &sleepSpy{}
	orch := newOrchestrator(t, nil, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierRegex, res.Tier)
	assert.Zero(t, res.Attempts)
	assert.Empty(t, spy.waits)
}

func TestOrchestrator_UnavailableModelSkipsSchedule(t *testing.T) {
	stub := &stubExtractor{available: false}
	spy := &sleepSpy{}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierRegex, res.Tier)
	assert.Zero(t, res.Attempts)
	assert.Zero(t, stub.calls)
	assert.Empty(t, spy.waits)
}

func TestOrchestrator_TransientExhaustionFallsBack(t *testing.T) {
	transient := &extract.ResponseError{Cause: errors.New("malformed reply")}
	stub := &stubExtractor{
		available: true,
		script:    []error{transient, transient, transient, transient, transient},
	}
	spy := &sleepSpy{}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	schedule := extract.DefaultBackoffSchedule()
	assert.Equal(t, extract.TierRegex, res.Tier)
	assert.Equal(t, len(schedule), res.Attempts)
	assert.Equal(t, len(schedule), stub.calls)
	// no wait after the final attempt
	assert.Equal(t, schedule[:len(schedule)-1], spy.waits)

	// fallback output is exactly what the regex tier alone would produce
	want, err := json.Marshal(extract.NewRegexStrategy(nil).Extract(sampleNotice))
	require.NoError(t, err)
	got, err := json.Marshal(res.Record)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrchestrator_SafetyBlockShortCircuits(t *testing.T) {
	stub := &stubExtractor{
		available: true,
		script:    []error{&extract.BlockedError{Reason: "SAFETY"}},
	}
	spy := &sleepSpy{}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierRegex, res.Tier)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, stub.calls)
	assert.Empty(t, spy.waits, "permanent failure must consume zero backoff delay")
}

func TestOrchestrator_UnavailableErrorMidFlight(t *testing.T) {
	stub := &stubExtractor{
		available: true,
		script:    []error{extract.ErrModelUnavailable},
	}
	spy := &sleepSpy{}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierRegex, res.Tier)
	assert.Empty(t, spy.waits)
}

func TestOrchestrator_SuccessAfterRetry(t *testing.T) {
	transient := &extract.ResponseError{Cause: errors.New("decode error")}
	stub := &stubExtractor{
		available: true,
		script:    []error{transient, nil},
		record:    modelRecord(),
	}
	spy := &sleepSpy{}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierModel, res.Tier)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, []time.Duration{extract.DefaultBackoffSchedule()[0]}, spy.waits)
}

func TestOrchestrator_CancelledBackoffFallsBack(t *testing.T) {
	transient := &extract.ResponseError{Cause: errors.New("timeout")}
	stub := &stubExtractor{available: true, script: []error{transient}}
	spy := &sleepSpy{cancel: true}
	orch := newOrchestrator(t, stub, spy)

	res := orch.ParseText(context.Background(), sampleNotice)

	assert.Equal(t, extract.TierRegex, res.Tier)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, stub.calls)
}

func TestOrchestrator_AlwaysYieldsCompleteRecord(t *testing.T) {
	transient := &extract.ResponseError{Cause: errors.New("boom")}
	stub := &stubExtractor{
		available: true,
		script:    []error{transient, transient, transient, transient, transient},
	}
	orch := newOrchestrator(t, stub, &sleepSpy{})

	res := orch.ParseText(context.Background(), "unmatchable text")

	for _, field := range constants.SchemaFields {
		assert.NotEmpty(t, res.Record.Field(field), "field %s", field)
	}
}
