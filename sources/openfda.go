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
	openFDAOrigin = "FDA (USA)"
	openFDAURL    = "https://www.accessdata.fda.gov"
)

// openFDALabelFields maps record fields to drug label sections, in extraction order
var openFDALabelFields = [][2]string{
	{"descripcion", "description"},
	{"indicaciones", "indications_and_usage"},
	{"dosis", "dosage_and_administration"},
	{"efectos_secundarios", "adverse_reactions"},
	{"contraindicaciones", "contraindications"},
	{"precauciones", "warnings"},
	{"interacciones", "drug_interactions"},
}

// openFDAListFields maps record fields to openfda harmonized lists
var openFDAListFields = [][2]string{
	{"via_administracion", "route"},
	{"sustancia_activa", "substance_name"},
}

// OpenFDA queries the openFDA drug label endpoint
type OpenFDA struct {
	endpoint string
	client   *fetch.Client
}

func NewOpenFDA(cfg Config, client *http.Client) *OpenFDA {
	cfg = cfg.withDefaults()
	return &OpenFDA{
		endpoint: cfg.OpenFDAURL,
		client:   fetch.New(client, cfg.UserAgent, cfg.Timeout),
	}
}

func (o *OpenFDA) Name() string { return entities.SourceFDA }

func (o *OpenFDA) Search(ctx context.Context, name string) (*entities.Record, error) {
	body, err := o.client.Get(ctx, o.endpoint, url.Values{
		"search": {fmt.Sprintf(`openfda.generic_name:"%s" OR openfda.brand_name:"%s"`, name, name)},
		"limit":  {"1"},
	})
	if err != nil {
		return nil, fmt.Errorf("openfda label: %w", err)
	}

	label := gjson.GetBytes(body, "results.0")
	if !label.Exists() {
		return nil, nil
	}

	record := entities.NewRecord()
	record.Set(entities.FieldName, openFDAName(label, name))
	record.Set(entities.FieldOrigin, openFDAOrigin)
	record.Set(entities.FieldURL, openFDAURL)
	base := record.Len()

	for _, field := range openFDALabelFields {
		value := label.Get(field[1])
		if !value.Exists() {
			continue
		}
		record.Set(field[0], textutil.Truncate(firstItems(value, 2, " "), maxSectionLength))
	}
	for _, field := range openFDAListFields {
		record.SetList(field[0], firstList(label.Get("openfda."+field[1]), 2))
	}

	if record.Len() == base {
		return nil, nil
	}
	return record, nil
}

func openFDAName(label gjson.Result, query string) string {
	if generic := label.Get("openfda.generic_name.0").String(); generic != "" {
		return generic
	}
	if brand := label.Get("openfda.brand_name.0").String(); brand != "" {
		return brand
	}
	return textutil.Title(query)
}

// firstItems joins the first n elements of a list, or returns a scalar as is
func firstItems(value gjson.Result, n int, sep string) string {
	if !value.IsArray() {
		return value.String()
	}
	return strings.Join(firstList(value, n), sep)
}

// firstList returns the first n non-blank elements of a list; a scalar becomes a single element
func firstList(value gjson.Result, n int) []string {
	if !value.Exists() {
		return nil
	}
	if !value.IsArray() {
		return []string{value.String()}
	}
	items := make([]string, 0, n)
	for _, item := range value.Array() {
		if len(items) == n {
			break
		}
		if s := strings.TrimSpace(item.String()); s != "" {
			items = append(items, s)
		}
	}
	return items
}
