package translation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/textutil"
	"github.com/tidwall/gjson"
)

var ErrNoTranslation = errors.New("no translation in response")

// MyMemory queries the MyMemory translation memory API
type MyMemory struct {
	baseURL string
	email   string
	client  *fetch.Client
}

// NewMyMemory creates the MyMemory backend
func NewMyMemory(baseURL, email, userAgent string, timeout time.Duration, client *http.Client) *MyMemory {
	return &MyMemory{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		client:  fetch.New(client, userAgent, timeout),
	}
}

func (m *MyMemory) Name() string { return "mymemory" }

func (m *MyMemory) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("q", textutil.Head(text, maxQueryLength))
	params.Set("langpair", sourceLang+"|"+targetLang)
	if m.email != "" {
		params.Set("de", m.email)
	}

	body, err := m.client.Get(ctx, m.baseURL+"/get", params)
	if err != nil {
		return "", err
	}

	// responseStatus comes back as a number or a quoted number depending on the error path
	if status := gjson.GetBytes(body, "responseStatus").Int(); status != http.StatusOK {
		return "", fmt.Errorf("mymemory answered status %d", status)
	}
	translated := gjson.GetBytes(body, "responseData.translatedText")
	if !translated.Exists() {
		return "", ErrNoTranslation
	}
	return cleanTranslation(translated.String()), nil
}
