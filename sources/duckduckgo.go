package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/textutil"
)

type duckDuckGoAnswer struct {
	Heading      string `json:"Heading"`
	AbstractText string `json:"AbstractText"`
	AbstractURL  string `json:"AbstractURL"`
}

// DuckDuckGo queries the instant answer API. It is only consulted when the other sources found little.
type DuckDuckGo struct {
	endpoint string
	client   *fetch.Client
}

func NewDuckDuckGo(cfg Config, client *http.Client) *DuckDuckGo {
	cfg = cfg.withDefaults()
	return &DuckDuckGo{
		endpoint: cfg.DuckDuckGoURL,
		client:   fetch.New(client, cfg.UserAgent, cfg.Timeout),
	}
}

func (d *DuckDuckGo) Name() string { return entities.SourceDuckDuckGo }

func (d *DuckDuckGo) Search(ctx context.Context, name string) (*entities.Record, error) {
	body, err := d.client.Get(ctx, d.endpoint, url.Values{
		"q":             {name + " medicamento"},
		"format":        {"json"},
		"no_html":       {"1"},
		"skip_disambig": {"1"},
		"t":             {"telegram_bot"},
	})
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: %w", err)
	}

	var answer duckDuckGoAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return nil, fmt.Errorf("duckduckgo: failed to decode answer: %w", err)
	}
	if answer.AbstractText == "" {
		return nil, nil
	}

	record := entities.NewRecord()
	if answer.Heading != "" {
		record.Set(entities.FieldName, answer.Heading)
	} else {
		record.Set(entities.FieldName, textutil.Title(name))
	}
	record.Set(entities.FieldOrigin, entities.SourceDuckDuckGo)
	record.Set("descripcion", textutil.Truncate(answer.AbstractText, maxSectionLength))
	record.Set(entities.FieldURL, answer.AbstractURL)
	return record, nil
}
