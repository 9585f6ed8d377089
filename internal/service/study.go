package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickayoup/gobunpro/internal/client"
	"github.com/patrickayoup/gobunpro/internal/models"
	"github.com/patrickayoup/gobunpro/internal/schema"
	"go.uber.org/zap"
)

// Format selects how results are rendered.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

type StudyS struct {
	api BunproAPII
	log *zap.Logger
}

func NewStudyService(api BunproAPII, log *zap.Logger) *StudyS {
	return &StudyS{
		api: api,
		log: log,
	}
}

func (s *StudyS) StudyQueue(ctx context.Context, format Format, opts ...client.CallOption) (string, error) {
	user, queue, err := s.api.StudyQueue(ctx, opts...)
	if err != nil {
		s.logFailure("study_queue", err)
		return "", err
	}
	s.log.Debug("study queue fetched",
		zap.String("username", user.Username),
		zap.Int("reviews_available", queue.ReviewsAvailable),
	)

	if format == FormatJSON {
		return formatJSON(user, schema.FormatStudyQueue(queue))
	}
	return formatStudyQueue(user, queue), nil
}

func (s *StudyS) RecentItems(ctx context.Context, format Format, opts ...client.CallOption) (string, error) {
	user, points, err := s.api.RecentItems(ctx, opts...)
	if err != nil {
		s.logFailure("recent_items", err)
		return "", err
	}
	s.log.Debug("recent items fetched",
		zap.String("username", user.Username),
		zap.Int("count", len(points)),
	)

	if format == FormatJSON {
		return formatJSON(user, schema.FormatGrammarPoints(points))
	}
	return formatRecentItems(user, points), nil
}

// logFailure logs at warn level. The CLI reports the error itself, so outside
// debug mode nothing is logged twice.
func (s *StudyS) logFailure(endpoint string, err error) {
	var (
		apiErr    *client.APIError
		schemaErr *client.SchemaError
	)
	switch {
	case errors.As(err, &apiErr):
		s.log.Warn("bunpro api error",
			zap.String("endpoint", endpoint),
			zap.Int("status", apiErr.StatusCode),
			zap.Strings("messages", apiErr.Messages),
		)
	case errors.As(err, &schemaErr):
		s.log.Warn("invalid bunpro response",
			zap.String("endpoint", endpoint),
			zap.String("section", schemaErr.Section),
			zap.Strings("problems", schemaErr.Err.Messages()),
		)
	default:
		s.log.Warn("bunpro request failed", zap.String("endpoint", endpoint), zap.Error(err))
	}
}

func formatStudyQueue(user models.UserInformation, queue models.StudyQueue) string {
	var sb strings.Builder

	sb.WriteString(user.String())
	sb.WriteString("\n")
	sb.WriteString(queue.String())

	return sb.String()
}

func formatRecentItems(user models.UserInformation, points []models.GrammarPoint) string {
	var sb strings.Builder

	sb.WriteString(user.String())
	if len(points) == 0 {
		sb.WriteString("\nNo recent items.")
		return sb.String()
	}
	for _, p := range points {
		sb.WriteString("\n")
		sb.WriteString(p.String())
	}

	return sb.String()
}

func formatJSON(user models.UserInformation, requested any) (string, error) {
	out, err := json.MarshalIndent(map[string]any{
		"user_information":      schema.FormatUserInformation(user),
		"requested_information": requested,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(out), nil
}
