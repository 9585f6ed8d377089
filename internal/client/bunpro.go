package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/patrickayoup/gobunpro/internal/models"
	"github.com/patrickayoup/gobunpro/internal/schema"
	"go.uber.org/zap"
)

const (
	sectionUser      = "user_information"
	sectionRequested = "requested_information"
)

type envelope struct {
	UserInformation      any `json:"user_information"`
	RequestedInformation any `json:"requested_information"`
}

type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// StudyQueue fetches the user's account summary and review queue.
func (b *BunproAPI) StudyQueue(ctx context.Context, opts ...CallOption) (models.UserInformation, models.StudyQueue, error) {
	o := b.callOptions(opts)

	env, err := b.get(ctx, o.apiKey, "study_queue")
	if err != nil {
		return models.UserInformation{}, models.StudyQueue{}, err
	}

	user, err := schema.ParseUserInformation(env.UserInformation)
	if err != nil {
		return models.UserInformation{}, models.StudyQueue{}, newSchemaError(sectionUser, err)
	}
	queue, err := schema.ParseStudyQueue(env.RequestedInformation)
	if err != nil {
		return models.UserInformation{}, models.StudyQueue{}, newSchemaError(sectionRequested, err)
	}

	return user, queue, nil
}

// RecentItems fetches the user's most recently added grammar points.
// Without WithLimit the server default applies.
func (b *BunproAPI) RecentItems(ctx context.Context, opts ...CallOption) (models.UserInformation, []models.GrammarPoint, error) {
	o := b.callOptions(opts)

	path := "recent_items"
	if o.limit != nil {
		if *o.limit < MinLimit || *o.limit > MaxLimit {
			return models.UserInformation{}, nil, &LimitError{Limit: *o.limit}
		}
		path += "/" + strconv.Itoa(*o.limit)
	}

	env, err := b.get(ctx, o.apiKey, path)
	if err != nil {
		return models.UserInformation{}, nil, err
	}

	user, err := schema.ParseUserInformation(env.UserInformation)
	if err != nil {
		return models.UserInformation{}, nil, newSchemaError(sectionUser, err)
	}
	points, err := schema.ParseGrammarPoints(env.RequestedInformation)
	if err != nil {
		return models.UserInformation{}, nil, newSchemaError(sectionRequested, err)
	}

	return user, points, nil
}

func (b *BunproAPI) endpoint(apiKey, path string) (string, error) {
	if apiKey == "" {
		return "", ErrAPIKeyRequired
	}
	return b.baseURL + "/" + url.PathEscape(apiKey) + "/" + path, nil
}

func (b *BunproAPI) get(ctx context.Context, apiKey, path string) (envelope, error) {
	reqURL, err := b.endpoint(apiKey, path)
	if err != nil {
		return envelope{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return envelope{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", b.userAgent)

	b.log.Debug("bunpro request", zap.String("method", http.MethodGet), zap.String("endpoint", path))

	resp, err := b.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("read response: %w", err)
	}

	b.log.Debug("bunpro response", zap.String("endpoint", path), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Messages: errorMessages(body)}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}
	return env, nil
}

// errorMessages extracts errors[].message from an error body, one entry per
// error as sent. Bodies in any other shape yield no messages.
func errorMessages(body []byte) []string {
	var payload errorEnvelope
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	messages := make([]string, 0, len(payload.Errors))
	for _, e := range payload.Errors {
		messages = append(messages, e.Message)
	}
	return messages
}
