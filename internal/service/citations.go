package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type citationsKey struct{}

type citationSink struct {
	urls []string
}

func withCitationSink(ctx context.Context) (context.Context, *citationSink) {
	sink := &citationSink{}
	return context.WithValue(ctx, citationsKey{}, sink), sink
}

func citationSinkFrom(ctx context.Context) *citationSink {
	sink, _ := ctx.Value(citationsKey{}).(*citationSink)
	return sink
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// citationsDoer читает поле citations из ответа провайдера (go-openai его
// не знает) и возвращает тело нетронутым для дальнейшего декодирования.
type citationsDoer struct {
	next httpDoer
}

func (d *citationsDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil {
		return nil, err
	}
	sink := citationSinkFrom(req.Context())
	if sink == nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	var payload struct {
		Citations json.RawMessage `json:"citations"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	sink.urls = stringCitations(payload.Citations)

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

// stringCitations оставляет только непустые строки массива citations
func stringCitations(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var urls []string
	for _, item := range items {
		var u string
		// null декодируется в "" без ошибки
		if err := json.Unmarshal(item, &u); err == nil && u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
