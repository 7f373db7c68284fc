package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/formatter"
	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/sources"
	"github.com/giygas/medicamentos-bot/translation"
	"github.com/giygas/medicamentos-bot/validation"
)

type passthroughTranslator struct{}

func (passthroughTranslator) Translate(ctx context.Context, text, targetLang string) string {
	return text
}

func (passthroughTranslator) IsSpanish(text string) bool { return true }

type stubFinder struct {
	rs    *entities.ResultSet
	err   error
	panic bool
	calls int
}

func (s *stubFinder) Search(ctx context.Context, query string) (*entities.ResultSet, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	return s.rs, s.err
}

func newService(finder *stubFinder) *Service {
	return NewWithFactories(
		validation.NewQueryValidator(),
		func() interfaces.Translator { return passthroughTranslator{} },
		func() interfaces.Finder { return finder },
		"es",
		30,
	)
}

func TestProcessShortQueryMakesNoExternalCall(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sourcesCfg := sources.Config{
		Timeout:        time.Second,
		WikipediaURL:   server.URL,
		MedlinePlusURL: server.URL,
		OpenFDAURL:     server.URL,
		DuckDuckGoURL:  server.URL,
	}
	translationCfg := translation.Config{MyMemoryURL: server.URL, Mirrors: []string{server.URL}}

	svc := NewWithFactories(
		validation.NewQueryValidator(),
		func() interfaces.Translator { return translation.New(translationCfg, server.Client()) },
		func() interfaces.Finder { return sources.NewFinder(sourcesCfg, server.Client()) },
		"es",
		30,
	)

	for _, q := range []string{"", "a", "ab", "  ab  "} {
		if got := svc.Process(context.Background(), q); got != formatter.TooShortMessage {
			t.Errorf("Process(%q) = %q, want too-short prompt", q, got)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("Expected no external calls, got %d", hits.Load())
	}
}

func TestProcessNoResults(t *testing.T) {
	finder := &stubFinder{rs: entities.NewResultSet()}
	got := newService(finder).Process(context.Background(), "  zzzqx  ")

	if got != formatter.NoResults("zzzqx") {
		t.Errorf("Expected no-results template, got %q", got)
	}
}

func TestProcessFormatsResults(t *testing.T) {
	rec := entities.NewRecord()
	rec.Set(entities.FieldName, "Omeprazol")
	rec.Set("descripcion", "El omeprazol se usa para tratar la acidez de estómago.")
	rs := entities.NewResultSet()
	rs.Add(entities.SourceMedlinePlus, rec)

	svc := newService(&stubFinder{rs: rs}).WithClock(func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	})
	got := svc.Process(context.Background(), "omeprazol")

	for _, want := range []string{"💊 *OMEPRAZOL*", "📚 *Fuentes:* MedlinePlus", "02/01/2026 03:04"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in message:\n%s", want, got)
		}
	}
}

func TestProcessRecoversFromPanics(t *testing.T) {
	finder := &stubFinder{panic: true}
	svc := newService(finder)

	got := svc.Process(context.Background(), "aspirin")
	if got != formatter.SearchError("aspirin") {
		t.Errorf("Expected generic failure message, got %q", got)
	}

	// The service keeps serving
	finder.panic = false
	finder.rs = entities.NewResultSet()
	if got := svc.Process(context.Background(), "aspirin"); got != formatter.NoResults("aspirin") {
		t.Errorf("Expected service to keep working after a panic, got %q", got)
	}
}

func TestProcessCancelledSearch(t *testing.T) {
	finder := &stubFinder{rs: entities.NewResultSet(), err: context.Canceled}
	if got := newService(finder).Process(context.Background(), "aspirin"); got != formatter.SearchError("aspirin") {
		t.Errorf("Expected generic failure message, got %q", got)
	}
}

func TestCheck(t *testing.T) {
	svc := newService(&stubFinder{})

	tests := []struct {
		input   string
		ok      bool
		message string
	}{
		{" aspirin ", true, ""},
		{"ab", false, formatter.TooShortMessage},
		{strings.Repeat("x y ", 30), false, formatter.TooLongMessage},
		{"<script>", false, formatter.InvalidQueryMessage},
	}
	for _, tt := range tests {
		_, message, ok := svc.Check(tt.input)
		if ok != tt.ok || message != tt.message {
			t.Errorf("Check(%q) = %q, %v; want %q, %v", tt.input, message, ok, tt.message, tt.ok)
		}
	}
}
