package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89.9, "Very Good"},
		{80, "Very Good"},
		{75, "Good"},
		{70, "Good"},
		{65, "Fair"},
		{60, "Fair"},
		{55, "Below Average"},
		{50, "Below Average"},
		{49.9, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.score), "score=%v", tt.score)
	}
}

func TestRecommendations_AllDimensionsLow(t *testing.T) {
	recs := Recommendations(30, 20, 10, 20, true)
	assert.Len(t, recs, 4)
}

func TestRecommendations_NothingToFlag(t *testing.T) {
	recs := Recommendations(90, 85, 95, 90, true)
	assert.Equal(t, []string{"Your resume is well structured. Keep it up!"}, recs)
}

func TestRecommendations_KeywordHintSuppressedWithoutJobDescription(t *testing.T) {
	// Keyword score is the neutral-but-unused dimension here; no hint
	// should mention it even if a caller passes a low value.
	recs := Recommendations(90, 85, 0, 88, false)
	assert.Equal(t, []string{"Your resume is well structured. Keep it up!"}, recs)
}

func TestRecommendations_LowOverallOnly(t *testing.T) {
	recs := Recommendations(65, 62, 61, 63, true)
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "overall structure")
}
