package intent

import "fitlife-assistant/internal/domain"

type partTerms struct {
	part  domain.BodyPart
	terms []string
}

// word marks a keyword that only matches as a whole token. Short words such
// as "hi" or "arm" hide inside longer ones ("this", "warm").
func word(w string) string {
	return " " + w + " "
}

// bodyPartTerms is checked in order; the first part that matches wins.
var bodyPartTerms = []partTerms{
	{domain.BodyPartLegs, []string{"leg", "legs", "thigh", "thighs", "calves", "quad", "quads", "hamstring", "hamstrings", "glutes", "squat", "squats"}},
	{domain.BodyPartArms, []string{word("arm"), word("arms"), "biceps", "triceps", "forearm", "forearms"}},
	{domain.BodyPartChest, []string{"chest", "pecs", "pectoral", "pectorals", "bench"}},
	{domain.BodyPartBack, []string{word("back"), "spine", word("lats"), "latissimus", "trapezius", word("traps")}},
	{domain.BodyPartCore, []string{word("core"), word("abs"), "abdominal", "abdominals", "stomach", "six pack", "sixpack", "oblique", "obliques"}},
}

type categoryTerms struct {
	category domain.Category
	terms    []string
}

// categoryTermsByPriority lists the remaining categories in priority order.
// Body parts come before any of these.
var categoryTermsByPriority = []categoryTerms{
	{domain.CategoryWorkout, []string{"workout", "workouts", "exercise", "exercises", "training", "train", "fitness", word("fit"), "gym", "routine", "lifting", "cardio", "strength", "hiit", "warm up", "warmup", "warm-up"}},
	{domain.CategoryNutrition, []string{"meal", "meals", "diet", "food", "nutrition", word("eat"), "eating", "calorie", "calories", "protein", "carb", "carbs", word("fat"), "macros", "recipe", "breakfast", "oats", "gluten", word("ate")}},
	{domain.CategorySleep, []string{"sleep", "sleeping", word("rest"), "tired", "insomnia", word("nap"), "bedtime"}},
	{domain.CategoryMotivation, []string{"motivation", "motivated", "motivate", "goal", "goals", "challenge", "stuck", "progress", "plateau", "inspire"}},
	{domain.CategoryHydration, []string{"water", "hydration", "hydrate", "hydrated", "dehydrated", "drink", "drinking", "thirsty", "fluids"}},
	{domain.CategoryMeditation, []string{"meditation", "meditate", "yoga", "stress", "relax", "mindfulness", "breathing", "calm", "stretch", "flexibility"}},
	{domain.CategoryGreeting, []string{"hello", word("hi"), word("hey"), "greetings", "howdy"}},
	{domain.CategoryGratitude, []string{"thank", "thanks", word("thx"), "appreciate", "grateful"}},
}

type topicTerms struct {
	topic string
	terms []string
}

// topicsByCategory refines the winning category. Checked in order by plain
// containment; no match means the category's generic template.
var topicsByCategory = map[domain.Category][]topicTerms{
	domain.CategoryWorkout: {
		{TopicPlan, []string{"generate", "plan", "routine", "schedule"}},
		{TopicForm, []string{"form", "technique"}},
		{TopicBeginner, []string{"beginner", "start"}},
	},
	domain.CategoryNutrition: {
		{TopicPlan, []string{"plan", "schedule"}},
		{TopicProtein, []string{"protein", "muscle"}},
		{TopicCarbs, []string{"carb", "energy"}},
		{TopicFat, []string{"fat"}},
		{TopicRecipe, []string{"recipe", "cook"}},
	},
	domain.CategorySleep: {
		{TopicInsomnia, []string{"insomnia", "can't sleep", "cant sleep"}},
		{TopicNap, []string{"nap", "daytime"}},
		{TopicRecovery, []string{"recovery", "muscle"}},
		{TopicTracking, []string{"track", "monitor"}},
	},
	domain.CategoryMotivation: {
		{TopicPlateau, []string{"stuck", "plateau"}},
		{TopicGoals, []string{"goal", "target"}},
		{TopicHabits, []string{"habit", "consistent"}},
		{TopicTracking, []string{"track", "progress"}},
	},
}

const (
	TopicPlan     = "plan"
	TopicForm     = "form"
	TopicBeginner = "beginner"
	TopicProtein  = "protein"
	TopicCarbs    = "carbs"
	TopicFat      = "fat"
	TopicRecipe   = "recipe"
	TopicInsomnia = "insomnia"
	TopicNap      = "nap"
	TopicRecovery = "recovery"
	TopicTracking = "tracking"
	TopicPlateau  = "plateau"
	TopicGoals    = "goals"
	TopicHabits   = "habits"
)

// fuzzyStopwords never take part in fuzzy matching. Most are one edit away
// from a short keyword ("get" and "leg", "are" and "arm", "best" and "rest").
var fuzzyStopwords = toSet(
	// near misses of short keywords
	"art", "beach", "best", "bit", "brain", "bunch", "call", "card", "care", "cars", "cat",
	"chess", "code", "come", "deal", "died", "dress", "fact", "fan", "far", "farm", "fix",
	"flat", "foot", "harm", "hat", "hit", "key", "kit", "lack", "late", "later", "less",
	"lit", "log", "lots", "map", "mean", "mood", "pack", "pets", "radio", "rain", "real",
	"reset", "sat", "score", "stock", "street", "tap", "test", "thing", "things", "think",
	"thirty", "waiter", "warm", "wood", "wore", "wraps",
	// function words
	"about", "after", "again", "also", "and", "any", "are", "been", "before", "being", "but",
	"can", "could", "did", "does", "doing", "done", "down", "each", "even", "every", "for",
	"from", "get", "gets", "getting", "give", "going", "gone", "good", "got", "had", "has",
	"have", "her", "here", "hers", "him", "his", "how", "into", "its", "just", "know", "let",
	"lets", "like", "make", "many", "more", "most", "much", "need", "not", "now", "off",
	"once", "only", "other", "our", "out", "over", "own", "same", "she", "should", "some",
	"such", "than", "that", "the", "their", "them", "then", "there", "these", "they", "this",
	"those", "too", "under", "until", "very", "want", "was", "way", "well", "were", "what",
	"when", "where", "which", "while", "who", "why", "will", "with", "would", "yes", "yet",
	"you", "your",
)

func toSet(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}
