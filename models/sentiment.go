// ABOUTME: Sentiment classification models
// ABOUTME: Provider label/score pairs, normalized verdicts and predict API contracts

package models

// Sentiment is the three-way sentiment class
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentPositive Sentiment = "positive"
)

// Star rating bounds produced by the classification model
const (
	MinStars = 1
	MaxStars = 5
)

// SentimentForScore maps a 1-5 star score to a sentiment class.
// 1-2 is negative, 3 is neutral, 4-5 is positive.
func SentimentForScore(score int) Sentiment {
	switch {
	case score <= 2:
		return SentimentNegative
	case score == 3:
		return SentimentNeutral
	default:
		return SentimentPositive
	}
}

// LabelScore is a single entry of a provider classification result,
// e.g. {"label": "4 stars", "score": 0.61}
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentVerdict is the normalized classification outcome
type SentimentVerdict struct {
	Score      int       `json:"score"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
}

// PredictRequest is the body accepted by the predict endpoint
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse is returned by the predict endpoint
type PredictResponse struct {
	Text       string    `json:"text"`
	Score      int       `json:"score"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	User       string    `json:"user"`
}
