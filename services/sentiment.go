// ABOUTME: Sentiment normalizer over a text classification provider
// ABOUTME: Reduces 1-5 star label/score pairs to a score, sentiment class and confidence

package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/markalston/sentiment-analyzer/models"
)

// SentimentService classifies text and normalizes the provider output
type SentimentService struct {
	classifier TextClassifier
}

// NewSentimentService creates a sentiment service backed by classifier
func NewSentimentService(classifier TextClassifier) *SentimentService {
	return &SentimentService{classifier: classifier}
}

// Classify returns the normalized sentiment verdict for text
func (s *SentimentService) Classify(ctx context.Context, text string) (*models.SentimentVerdict, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	results, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	return Normalize(results)
}

// Normalize picks the highest scoring entry and maps its star label to a verdict.
// Ties keep the first entry encountered.
func Normalize(results []models.LabelScore) (*models.SentimentVerdict, error) {
	if len(results) == 0 {
		return nil, ErrNoPrediction
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}

	stars, err := parseStars(best.Label)
	if err != nil {
		return nil, err
	}

	return &models.SentimentVerdict{
		Score:      stars,
		Sentiment:  models.SentimentForScore(stars),
		Confidence: best.Score,
	}, nil
}

// parseStars extracts n from a "<n> star" or "<n> stars" label
func parseStars(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty label", ErrProviderError)
	}

	stars, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: unexpected label %q", ErrProviderError, label)
	}
	if stars < models.MinStars || stars > models.MaxStars {
		return 0, fmt.Errorf("%w: label %q outside %d-%d stars", ErrProviderError, label, models.MinStars, models.MaxStars)
	}

	return stars, nil
}
