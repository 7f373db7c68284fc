package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/giygas/medicamentos-bot/fetch"
	"github.com/giygas/medicamentos-bot/logging"
	"github.com/giygas/medicamentos-bot/textutil"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// LibreTranslate posts to a list of public LibreTranslate mirrors until one answers
type LibreTranslate struct {
	mirrors []string
	client  *fetch.Client
}

// NewLibreTranslate creates the LibreTranslate backend
func NewLibreTranslate(mirrors []string, userAgent string, timeout time.Duration, client *http.Client) *LibreTranslate {
	return &LibreTranslate{
		mirrors: mirrors,
		client:  fetch.New(client, userAgent, timeout),
	}
}

func (l *LibreTranslate) Name() string { return "libretranslate" }

func (l *LibreTranslate) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload := libreTranslateRequest{
		Q:      textutil.Head(text, maxQueryLength),
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	}

	var errs *multierror.Error
	for _, mirror := range l.mirrors {
		if ctx.Err() != nil {
			errs = multierror.Append(errs, ctx.Err())
			break
		}

		endpoint := strings.TrimRight(mirror, "/") + "/translate"
		body, err := l.client.PostJSON(ctx, endpoint, payload)
		if err != nil {
			logging.Debug("LibreTranslate mirror failed", "mirror", mirror, "error", err)
			errs = multierror.Append(errs, err)
			continue
		}

		translated := gjson.GetBytes(body, "translatedText")
		if !translated.Exists() {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", mirror, ErrNoTranslation))
			continue
		}
		return cleanTranslation(translated.String()), nil
	}

	if errs == nil {
		return "", fmt.Errorf("no LibreTranslate mirrors configured")
	}
	return "", errs.ErrorOrNil()
}
