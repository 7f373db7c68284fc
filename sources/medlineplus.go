package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/giygas/medicamentos-bot/entities"
	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/textutil"
	"github.com/tidwall/gjson"
)

const (
	medlinePlusArticleURL = "https://medlineplus.gov/spanish/druginfo/%s.html"
	medlinePlusOrigin     = "MedlinePlus (NIH)"
	maxSectionLength      = 400
)

// MedlinePlus queries the NIH MedlinePlus REST API in Spanish
type MedlinePlus struct {
	baseURL string
	client  *fetch.Client
}

func NewMedlinePlus(cfg Config, client *http.Client) *MedlinePlus {
	cfg = cfg.withDefaults()
	return &MedlinePlus{
		baseURL: strings.TrimRight(cfg.MedlinePlusURL, "/"),
		client:  fetch.New(client, cfg.UserAgent, cfg.Timeout),
	}
}

func (m *MedlinePlus) Name() string { return entities.SourceMedlinePlus }

func (m *MedlinePlus) Search(ctx context.Context, name string) (*entities.Record, error) {
	body, err := m.client.Get(ctx, m.baseURL+"/search", url.Values{
		"q":       {name},
		"lang":    {"es"},
		"maxDocs": {"1"},
	})
	if err != nil {
		return nil, fmt.Errorf("medlineplus search: %w", err)
	}

	result := gjson.ParseBytes(body)
	id := result.Get("results.0.id").String()
	if result.Get("total").Int() <= 0 || id == "" {
		return nil, nil
	}

	body, err = m.client.Get(ctx, m.baseURL+"/drug/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("medlineplus drug %s: %w", id, err)
	}
	detail := gjson.ParseBytes(body)

	record := entities.NewRecord()
	if title := detail.Get("title"); title.Exists() {
		record.Set(entities.FieldName, title.String())
	} else {
		record.Set(entities.FieldName, textutil.Title(name))
	}
	record.Set("descripcion", textutil.StripHTML(detail.Get("description").String()))
	record.Set(entities.FieldURL, fmt.Sprintf(medlinePlusArticleURL, id))
	record.Set(entities.FieldOrigin, medlinePlusOrigin)

	detail.Get("sections").ForEach(func(_, section gjson.Result) bool {
		title := section.Get("title").String()
		content := textutil.StripHTML(section.Get("content").String())
		if title != "" && content != "" {
			key := strings.ReplaceAll(textutil.Lower(title), " ", "_")
			record.Set(key, textutil.Truncate(content, maxSectionLength))
		}
		return true
	})

	return record, nil
}
