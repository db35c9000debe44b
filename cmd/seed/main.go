package main

import (
	"log"

	badgemodels "github.com/architect/francais-pro/internal/badges/models"
	"github.com/architect/francais-pro/internal/common/database"
	exmodels "github.com/architect/francais-pro/internal/exercises/models"
	exservices "github.com/architect/francais-pro/internal/exercises/services"
	usermodels "github.com/architect/francais-pro/internal/users/models"
	userrepo "github.com/architect/francais-pro/internal/users/repository"
	userservices "github.com/architect/francais-pro/internal/users/services"
	"github.com/architect/francais-pro/pkg/config"
	"github.com/architect/francais-pro/pkg/logger"
)

// Seeds a demo learner with a little graded history so the dashboard
// has something to show on a fresh database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(
		&usermodels.User{},
		&usermodels.Session{},
		&usermodels.ModuleProgress{},
		&exmodels.ExerciseRecord{},
		&exmodels.UserSkill{},
		&badgemodels.UserBadge{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	existing, err := userrepo.GetUserByEmail("demo@francais-pro.fr")
	if err != nil {
		log.Fatalf("Failed to check demo account: %v", err)
	}
	if existing != nil {
		log.Println("Demo account already exists, nothing to do")
		return
	}

	resp, err := userservices.Register(usermodels.RegisterRequest{
		Username:   "demo",
		FirstName:  "Camille",
		LastName:   "Durand",
		BirthDate:  "2012-03-14",
		ClassLevel: usermodels.ClassSixieme,
		Email:      "demo@francais-pro.fr",
		Password:   "demo-password",
	})
	if err != nil {
		log.Fatalf("Failed to create demo account: %v", err)
	}

	answers := []struct {
		skillID string
		correct bool
	}{
		{"homophones-a-as", true},
		{"homophones-a-as", true},
		{"homophones-ou-ou", false},
		{"verbes-er", true},
		{"pluriel-noms", false},
	}

	for _, a := range answers {
		answer := 0
		correctAnswer := 0
		if !a.correct {
			answer = 1
		}
		_, err := exservices.RecordOutcome(resp.User.ID, exmodels.SubmitRequest{
			Module:        "orthographe",
			SkillID:       a.skillID,
			Question:      "Question de démonstration",
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: correctAnswer,
			Answer:        &answer,
			Difficulty:    "facile",
			Explanation:   "Explication de démonstration",
			TimeSpentMs:   12000,
		})
		if err != nil {
			log.Fatalf("Failed to seed exercise history: %v", err)
		}
	}

	log.Printf("Demo account created: demo@francais-pro.fr (user id %d)", resp.User.ID)
}
