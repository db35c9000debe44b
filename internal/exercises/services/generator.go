package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/architect/francais-pro/internal/catalog"
	"github.com/architect/francais-pro/internal/exercises/models"
	"github.com/architect/francais-pro/internal/llm"
	usermodels "github.com/architect/francais-pro/internal/users/models"
	userrepo "github.com/architect/francais-pro/internal/users/repository"
	"github.com/architect/francais-pro/pkg/config"
	"github.com/architect/francais-pro/pkg/logger"
)

// Generator produces exercises, live when the provider is healthy and
// from the static bank otherwise. Generation never fails: every call
// yields a usable exercise.
type Generator struct {
	provider llm.Provider // nil runs the generator in bank-only mode
	breaker  *Breaker

	maxTokens   int
	temperature float64
	seriesDelay time.Duration
}

// NewGenerator wires a generator. provider may be nil, in which case
// every exercise comes from the static bank.
func NewGenerator(provider llm.Provider, breaker *Breaker, cfg config.AIConfig) *Generator {
	return &Generator{
		provider:    provider,
		breaker:     breaker,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		seriesDelay: cfg.SeriesDelay,
	}
}

// GenerateExercise produces one exercise for the user in the given
// module, targeting their weak skills at a difficulty inferred from
// their class level and module progress.
func (g *Generator) GenerateExercise(ctx context.Context, user *usermodels.User, req models.GenerateRequest) *models.Exercise {
	module := catalog.Category(req.Module)

	difficulty, targets, weak := g.plan(user, module, req.FocusSkills)

	ex := g.generateOne(ctx, user, module, difficulty, targets, weak)
	return ex
}

// GenerateSeries produces exactly req.Count exercises, cycling through
// the user's weak skills so a series covers all of them. Individual
// generation failures fall back to the bank; the series length never
// shrinks.
func (g *Generator) GenerateSeries(ctx context.Context, user *usermodels.User, req models.GenerateSeriesRequest) []models.Exercise {
	module := catalog.Category(req.Module)

	difficulty, targets, weak := g.plan(user, module, req.FocusSkills)

	series := make([]models.Exercise, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		focus := targets
		if len(targets) > 0 {
			focus = []string{targets[i%len(targets)]}
		}

		if i > 0 && g.liveAvailable() {
			g.pause(ctx)
		}

		ex := g.generateOne(ctx, user, module, difficulty, focus, weak)
		series = append(series, *ex)
	}
	return series
}

// plan resolves the difficulty and target skills for a generation run.
// Repository failures degrade to defaults rather than aborting, so a
// flaky database never blocks generation.
func (g *Generator) plan(user *usermodels.User, module catalog.Category, focus []string) (catalog.Difficulty, []string, []*models.UserSkill) {
	progress, err := userrepo.GetModuleProgress(user.ID, string(module))
	if err != nil {
		logger.Warn("failed to load module progress, using class-level difficulty",
			zap.Uint("user_id", user.ID), zap.String("module", string(module)), zap.Error(err))
		progress = nil
	}
	difficulty := SelectDifficulty(user.ClassLevel, progress)

	targets, weak, err := TargetSkills(user.ID, module, focus)
	if err != nil {
		logger.Warn("failed to resolve target skills",
			zap.Uint("user_id", user.ID), zap.String("module", string(module)), zap.Error(err))
		targets, weak = focus, nil
	}

	return difficulty, targets, weak
}

func (g *Generator) liveAvailable() bool {
	return g.provider != nil && g.breaker.Available()
}

func (g *Generator) generateOne(
	ctx context.Context,
	user *usermodels.User,
	module catalog.Category,
	difficulty catalog.Difficulty,
	targets []string,
	weak []*models.UserSkill,
) *models.Exercise {
	if !g.liveAvailable() {
		return g.fallback(module, difficulty)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildExercisePrompt(user.ClassLevel, module, difficulty, targets, weak),
		Schema:      exerciseSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		g.breaker.RecordError()
		logger.Warn("live generation failed, serving bank exercise",
			zap.Uint("user_id", user.ID), zap.String("module", string(module)), zap.Error(err))
		return g.fallback(module, difficulty)
	}

	ex, err := normalizeExercise(resp.Content, module, difficulty, targets)
	if err != nil {
		g.breaker.RecordError()
		logger.Warn("generated exercise failed normalization, serving bank exercise",
			zap.Uint("user_id", user.ID), zap.String("module", string(module)), zap.Error(err))
		return g.fallback(module, difficulty)
	}

	g.breaker.Reset()
	return ex
}

// fallback serves a bank exercise for the module, preferring the
// requested difficulty, then any difficulty, then the placeholder.
func (g *Generator) fallback(module catalog.Category, difficulty catalog.Difficulty) *models.Exercise {
	if got := FallbackByModuleAndDifficulty(module, difficulty, 1); len(got) > 0 {
		return &got[0]
	}
	if got := FallbackRandom(module, 1); len(got) > 0 {
		return &got[0]
	}
	ex := placeholderExercise(difficulty)
	return &ex
}

var errMalformedExercise = errors.New("exercise fields out of range")

// normalizeExercise decodes provider output and enforces the shape the
// client depends on. The skill id must belong to the requested module;
// an unknown id is replaced with the first target skill, or the
// placeholder skill when no targets exist.
func normalizeExercise(raw json.RawMessage, module catalog.Category, difficulty catalog.Difficulty, targets []string) (*models.Exercise, error) {
	var ex models.Exercise
	if err := json.Unmarshal(raw, &ex); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}

	if ex.Question == "" || ex.Explanation == "" ||
		len(ex.Options) != 4 ||
		ex.CorrectAnswer < 0 || ex.CorrectAnswer > 3 {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: errMalformedExercise}
	}

	if skill := catalog.ByID(ex.SkillID); skill == nil || skill.Category != module {
		if len(targets) > 0 {
			ex.SkillID = targets[0]
		} else {
			ex.SkillID = models.GeneralSkillID
		}
	}

	ex.Difficulty = string(difficulty)
	return &ex, nil
}

// pause sleeps between live series calls to stay under provider rate
// limits, returning early if the request context is cancelled.
func (g *Generator) pause(ctx context.Context) {
	if g.seriesDelay <= 0 {
		return
	}
	t := time.NewTimer(g.seriesDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
