package domain

import "time"

// Category is the topical intent inferred from a user message.
type Category string

const (
	CategoryWorkout    Category = "workout"
	CategoryBodyPart   Category = "workout-bodypart"
	CategoryNutrition  Category = "nutrition"
	CategorySleep      Category = "sleep"
	CategoryMotivation Category = "motivation"
	CategoryHydration  Category = "hydration"
	CategoryMeditation Category = "meditation"
	CategoryGreeting   Category = "greeting"
	CategoryGratitude  Category = "gratitude"
	CategoryFallback   Category = "fallback"
)

type BodyPart string

const (
	BodyPartLegs  BodyPart = "legs"
	BodyPartArms  BodyPart = "arms"
	BodyPartChest BodyPart = "chest"
	BodyPartBack  BodyPart = "back"
	BodyPartCore  BodyPart = "core"
)

// Intent is the classification result for one message. BodyPart is set only
// for CategoryBodyPart. Topic is the sub-intent inside the category and is
// empty when the generic template applies.
type Intent struct {
	Category Category
	BodyPart BodyPart
	Topic    string
}

func (i Intent) String() string {
	s := string(i.Category)
	if i.BodyPart != "" {
		s += "/" + string(i.BodyPart)
	}
	if i.Topic != "" {
		s += ":" + i.Topic
	}
	return s
}

// Persona is the voice a reply is written in.
type Persona string

const (
	PersonaTrainer      Persona = "Personal Trainer"
	PersonaNutritionist Persona = "Nutritionist"
	PersonaMotivator    Persona = "Motivator"
	PersonaSleepCoach   Persona = "Sleep Coach"
	PersonaAssistant    Persona = "Assistant"
)

type SuggestedLink struct {
	Label string
	URL   string
}

// NavigationIntent asks the UI to move to Path once Delay has elapsed. It is
// advisory; the router never navigates.
type NavigationIntent struct {
	Path  string
	Delay time.Duration
}

type ReplySource string

const (
	SourceModel ReplySource = "model"
	SourceRules ReplySource = "rules"
)

// Reply is the router's answer to exactly one user message.
type Reply struct {
	Text       string
	Persona    Persona
	Intent     Intent
	Source     ReplySource
	Links      []SuggestedLink
	Navigation *NavigationIntent
}
