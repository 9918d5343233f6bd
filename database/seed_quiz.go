package database

import (
	"log"

	"github.com/chalkroute/teacher_match/models"
)

type seedQuestion struct {
	prompt  string
	options map[string]string // label -> archetype
}

var defaultQuiz = []seedQuestion{
	{
		prompt: "A student is struggling with a concept the rest of the class has mastered. What do you do?",
		options: map[string]string{
			"Sit with them one-on-one until it clicks":               "nurturer",
			"Pair them with a classmate and coach both":              "coach",
			"Design a different activity that teaches the same idea": "innovator",
			"Walk them back through the fundamentals step by step":   "scholar",
		},
	},
	{
		prompt: "What does your ideal classroom sound like?",
		options: map[string]string{
			"Quiet focus with occasional questions":        "scholar",
			"Small groups talking through a problem":       "guide",
			"Energetic debate that I keep on the rails":    "leader",
			"Controlled chaos around a hands-on project":   "innovator",
		},
	},
	{
		prompt: "A new school-wide initiative lands on your desk. Your first instinct?",
		options: map[string]string{
			"Volunteer to lead the rollout":                        "leader",
			"Figure out how it helps my most vulnerable students":  "nurturer",
			"Prototype a creative spin on it in my own classroom":  "innovator",
			"Read the research behind it before committing":        "scholar",
		},
	},
	{
		prompt: "Students remember you years later as the teacher who...",
		options: map[string]string{
			"Believed in them when nobody else did": "nurturer",
			"Pushed them harder than they thought they could go": "coach",
			"Let them find their own answers":                    "guide",
			"Ran the class everyone wanted to be in":             "leader",
		},
	},
	{
		prompt: "How do you plan a unit?",
		options: map[string]string{
			"Start from the big questions and let students explore": "guide",
			"Build in milestones and celebrate each one":            "coach",
			"Anchor everything to the source material":              "scholar",
			"Start from a project and work backwards":               "innovator",
		},
	},
}

// SeedQuizQuestions installs the default archetype quiz on an empty database.
// Existing questions are never touched, so schools can customize the quiz in
// place.
func SeedQuizQuestions() {
	var count int64
	if err := DB.Model(&models.QuizQuestion{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for quiz questions: %v", err)
		return
	}
	if count > 0 {
		log.Println("Quiz questions already exist.")
		return
	}

	for i, q := range defaultQuiz {
		question := models.QuizQuestion{Prompt: q.prompt, Position: i + 1}
		if err := DB.Create(&question).Error; err != nil {
			log.Fatalf("🔥 Failed to seed quiz question: %v", err)
			return
		}
		for label, archetype := range q.options {
			option := models.QuizOption{
				QuestionID: question.ID,
				Label:      label,
				Archetype:  archetype,
			}
			if err := DB.Create(&option).Error; err != nil {
				log.Fatalf("🔥 Failed to seed quiz option: %v", err)
				return
			}
		}
	}

	log.Println("✅ Quiz questions seeded successfully")
}
