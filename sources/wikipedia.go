package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/textutil"
	"github.com/tidwall/gjson"
)

const wikipediaMaxDescription = 600

// WikipediaEdition is one language edition tried by the Wikipedia source
type WikipediaEdition struct {
	Language     string
	BaseURL      string
	SearchSuffix string // appended to the query to bias results towards drugs
	MinExtract   int    // extracts must be longer than this
	Origin       string
	// StubOnMissingExtract returns a pointer-only record when the article exists but its extract cannot be fetched
	StubOnMissingExtract bool
}

var (
	wikipediaSearchSuffix = map[string]string{"es": "medicamento", "en": "drug"}
	wikipediaOriginNames  = map[string]string{"es": "Español", "en": "English"}
)

// Wikipedia looks medications up in the target language edition first, then the default one
type Wikipedia struct {
	editions []WikipediaEdition
	client   *fetch.Client
}

// NewWikipedia creates the Wikipedia source from the configured languages
func NewWikipedia(cfg Config, client *http.Client) *Wikipedia {
	cfg = cfg.withDefaults()
	editions := []WikipediaEdition{newEdition(cfg, cfg.TargetLanguage, 50, false)}
	if cfg.DefaultLanguage != cfg.TargetLanguage {
		editions = append(editions, newEdition(cfg, cfg.DefaultLanguage, 100, true))
	}
	return NewWikipediaWithEditions(fetch.New(client, cfg.UserAgent, cfg.Timeout), editions...)
}

// NewWikipediaWithEditions creates the source with explicit editions, tried in order
func NewWikipediaWithEditions(client *fetch.Client, editions ...WikipediaEdition) *Wikipedia {
	return &Wikipedia{editions: editions, client: client}
}

func newEdition(cfg Config, lang string, minExtract int, stub bool) WikipediaEdition {
	origin, ok := wikipediaOriginNames[lang]
	if !ok {
		origin = strings.ToUpper(lang)
	}
	suffix, ok := wikipediaSearchSuffix[lang]
	if !ok {
		suffix = wikipediaSearchSuffix["en"]
	}
	return WikipediaEdition{
		Language:             lang,
		BaseURL:              cfg.wikipediaBase(lang),
		SearchSuffix:         suffix,
		MinExtract:           minExtract,
		Origin:               "Wikipedia " + origin,
		StubOnMissingExtract: stub,
	}
}

func (w *Wikipedia) Name() string { return entities.SourceWikipedia }

// Search returns the first edition that has a long enough article introduction
func (w *Wikipedia) Search(ctx context.Context, name string) (*entities.Record, error) {
	var lastErr error
	for _, edition := range w.editions {
		record, err := w.searchEdition(ctx, edition, name)
		if err != nil {
			logging.Debug("Wikipedia edition lookup failed", "language", edition.Language, "error", err)
			lastErr = err
			continue
		}
		if record != nil {
			return record, nil
		}
	}
	return nil, lastErr
}

func (w *Wikipedia) searchEdition(ctx context.Context, edition WikipediaEdition, name string) (*entities.Record, error) {
	endpoint := edition.BaseURL + "/w/api.php"

	body, err := w.client.Get(ctx, endpoint, url.Values{
		"action":   {"query"},
		"format":   {"json"},
		"list":     {"search"},
		"srsearch": {strings.TrimSpace(name + " " + edition.SearchSuffix)},
		"utf8":     {"1"},
		"srlimit":  {"1"},
	})
	if err != nil {
		return nil, fmt.Errorf("wikipedia %s search: %w", edition.Language, err)
	}
	title := gjson.GetBytes(body, "query.search.0.title").String()
	if title == "" {
		return nil, nil
	}

	articleURL := edition.BaseURL + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))

	body, err = w.client.Get(ctx, endpoint, url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"titles":      {title},
		"prop":        {"extracts"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"utf8":        {"1"},
	})
	if err != nil {
		var statusErr *fetch.StatusError
		if edition.StubOnMissingExtract && errors.As(err, &statusErr) {
			record := entities.NewRecord()
			record.Set(entities.FieldName, title)
			record.Set("descripcion", "Información disponible en Wikipedia en inglés.")
			record.Set(entities.FieldURL, articleURL)
			record.Set(entities.FieldOrigin, edition.Origin)
			return record, nil
		}
		return nil, fmt.Errorf("wikipedia %s extract: %w", edition.Language, err)
	}

	// Pages are keyed by page id; the single requested title is the first key
	extract := gjson.GetBytes(body, "query.pages.*.extract").String()
	if textutil.Len(extract) <= edition.MinExtract {
		return nil, nil
	}

	record := entities.NewRecord()
	record.Set(entities.FieldName, title)
	record.Set("descripcion", textutil.Truncate(extract, wikipediaMaxDescription))
	record.Set(entities.FieldURL, articleURL)
	record.Set(entities.FieldOrigin, edition.Origin)
	return record, nil
}
