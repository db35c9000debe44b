package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/exercises/models"
	"github.com/architect/francais-pro/internal/llm"
	usermodels "github.com/architect/francais-pro/internal/users/models"
	"github.com/architect/francais-pro/pkg/config"
)

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		MaxTokens:   512,
		Temperature: 0.5,
		SeriesDelay: 0,
	}
}

func validExerciseJSON(skillID string) json.RawMessage {
	content, _ := json.Marshal(map[string]any{
		"question":      "Complète : « Il ___ soif. »",
		"options":       []string{"a", "à", "as", "ah"},
		"correctAnswer": 0,
		"explanation":   "« a » est le verbe avoir.",
		"skillId":       skillID,
	})
	return content
}

func TestGenerateExerciseLive(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassSixieme)

	provider := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON("homophones-a-as")})
	breaker := NewBreaker(10, time.Hour)
	g := NewGenerator(provider, breaker, testAIConfig())

	ex := g.GenerateExercise(context.Background(), user, models.GenerateRequest{Module: "orthographe"})

	require.NotNil(t, ex)
	assert.Equal(t, "Complète : « Il ___ soif. »", ex.Question)
	assert.Equal(t, "homophones-a-as", ex.SkillID)
	assert.Equal(t, string(catalog.Facile), ex.Difficulty, "6eme with no progress gets facile")
	assert.Equal(t, 1, provider.CallCount())
}

func TestGenerateExerciseFallsBackOnProviderError(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassSixieme)

	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	breaker := NewBreaker(10, time.Hour)
	g := NewGenerator(provider, breaker, testAIConfig())

	ex := g.GenerateExercise(context.Background(), user, models.GenerateRequest{Module: "orthographe"})

	require.NotNil(t, ex)
	assert.Len(t, ex.Options, 4)
	assert.Equal(t, string(catalog.Facile), ex.Difficulty)
	skill := catalog.ByID(ex.SkillID)
	require.NotNil(t, skill)
	assert.Equal(t, catalog.Orthographe, skill.Category)
	assert.True(t, breaker.Available(), "one failure must not open the breaker")
}

func TestGenerateExerciseSkipsProviderWhenBreakerOpen(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassSixieme)

	provider := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON("homophones-a-as")})
	breaker := NewBreaker(10, time.Hour)
	for i := 0; i < 11; i++ {
		breaker.RecordError()
	}
	g := NewGenerator(provider, breaker, testAIConfig())

	ex := g.GenerateExercise(context.Background(), user, models.GenerateRequest{Module: "grammaire"})

	require.NotNil(t, ex)
	assert.Equal(t, 0, provider.CallCount(), "open breaker must not touch the provider")
}

func TestGenerateExerciseNilProvider(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassTerminale)

	g := NewGenerator(nil, NewBreaker(10, time.Hour), testAIConfig())

	ex := g.GenerateExercise(context.Background(), user, models.GenerateRequest{Module: "vocabulaire"})

	require.NotNil(t, ex)
	assert.Len(t, ex.Options, 4)
	assert.Equal(t, string(catalog.Difficile), ex.Difficulty)
}

func TestGenerateExerciseSuccessResetsBreaker(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassSixieme)

	provider := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON("homophones-a-as")})
	breaker := NewBreaker(10, time.Hour)
	for i := 0; i < 9; i++ {
		breaker.RecordError()
	}
	g := NewGenerator(provider, breaker, testAIConfig())

	g.GenerateExercise(context.Background(), user, models.GenerateRequest{Module: "orthographe"})

	// after the reset a fresh run of threshold errors is needed
	for i := 0; i < 10; i++ {
		breaker.RecordError()
	}
	assert.True(t, breaker.Available())
}

func TestGenerateSeriesExactLength(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassSixieme)

	// two live successes, then the queue runs dry and every remaining
	// item falls back to the bank
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: validExerciseJSON("homophones-a-as")},
		llm.MockResponse{Content: validExerciseJSON("pluriel-noms")},
	)
	g := NewGenerator(provider, NewBreaker(10, time.Hour), testAIConfig())

	series := g.GenerateSeries(context.Background(), user, models.GenerateSeriesRequest{
		Module: "orthographe",
		Count:  6,
	})

	require.Len(t, series, 6)
	for _, ex := range series {
		assert.NotEmpty(t, ex.Question)
		assert.Len(t, ex.Options, 4)
	}
}

func TestGenerateSeriesCyclesFocusSkills(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, usermodels.ClassSixieme)

	provider := llm.NewMockProvider()
	for i := 0; i < 4; i++ {
		provider.AddResponse(llm.MockResponse{Content: validExerciseJSON("verbes-er")})
	}
	g := NewGenerator(provider, NewBreaker(10, time.Hour), testAIConfig())

	focus := []string{"verbes-er", "verbes-ir"}
	g.GenerateSeries(context.Background(), user, models.GenerateSeriesRequest{
		Module:      "orthographe",
		Count:       4,
		FocusSkills: focus,
	})

	require.Equal(t, 4, provider.CallCount())
	for i, call := range provider.Calls {
		expected := catalog.ByID(focus[i%len(focus)]).Name
		assert.Contains(t, call.Prompt, expected, "call %d should target %s", i, focus[i%len(focus)])
	}
}

func TestNormalizeExercise(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		targets []string
		wantErr bool
		skillID string
	}{
		{
			name:    "valid payload",
			raw:     string(validExerciseJSON("homophones-a-as")),
			skillID: "homophones-a-as",
		},
		{
			name:    "not json",
			raw:     "désolé, je ne peux pas répondre",
			wantErr: true,
		},
		{
			name:    "wrong option count",
			raw:     `{"question":"q","options":["a","b"],"correctAnswer":0,"explanation":"e","skillId":"homophones-a-as"}`,
			wantErr: true,
		},
		{
			name:    "answer index out of range",
			raw:     `{"question":"q","options":["a","b","c","d"],"correctAnswer":5,"explanation":"e","skillId":"homophones-a-as"}`,
			wantErr: true,
		},
		{
			name:    "unknown skill replaced by target",
			raw:     `{"question":"q","options":["a","b","c","d"],"correctAnswer":1,"explanation":"e","skillId":"invented-skill"}`,
			targets: []string{"pluriel-noms"},
			skillID: "pluriel-noms",
		},
		{
			name:    "skill from another module replaced",
			raw:     `{"question":"q","options":["a","b","c","d"],"correctAnswer":1,"explanation":"e","skillId":"synonymes"}`,
			skillID: models.GeneralSkillID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := normalizeExercise(json.RawMessage(tt.raw), catalog.Orthographe, catalog.Moyen, tt.targets)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.skillID, ex.SkillID)
			assert.Equal(t, string(catalog.Moyen), ex.Difficulty, "difficulty is always the selected one")
		})
	}
}
