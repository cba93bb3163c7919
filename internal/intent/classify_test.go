package intent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fitlife-assistant/internal/domain"
)

func TestClassify_Categories(t *testing.T) {
	cases := []struct {
		msg  string
		want domain.Intent
	}{
		{"I want leg exercises", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartLegs}},
		{"tricep dips", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartArms}},
		{"chest day", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartChest}},
		{"any tips for my back", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartBack}},
		{"core workout", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartCore}},
		{"beginner workout please", domain.Intent{Category: domain.CategoryWorkout, Topic: TopicBeginner}},
		{"Give me a workout plan", domain.Intent{Category: domain.CategoryWorkout, Topic: TopicPlan}},
		{"how to fix my technique in training", domain.Intent{Category: domain.CategoryWorkout, Topic: TopicForm}},
		{"tell me about meal plans", domain.Intent{Category: domain.CategoryNutrition, Topic: TopicPlan}},
		{"how much protein should I eat", domain.Intent{Category: domain.CategoryNutrition, Topic: TopicProtein}},
		{"What is a good carb source for energy", domain.Intent{Category: domain.CategoryNutrition, Topic: TopicCarbs}},
		{"recipe ideas", domain.Intent{Category: domain.CategoryNutrition, Topic: TopicRecipe}},
		{"how do I get better sleep", domain.Intent{Category: domain.CategorySleep}},
		{"I can't sleep, insomnia", domain.Intent{Category: domain.CategorySleep, Topic: TopicInsomnia}},
		{"how to take a nap", domain.Intent{Category: domain.CategorySleep, Topic: TopicNap}},
		{"I keep getting stuck on a plateau", domain.Intent{Category: domain.CategoryMotivation, Topic: TopicPlateau}},
		{"help me set a goal", domain.Intent{Category: domain.CategoryMotivation, Topic: TopicGoals}},
		{"i want to track my progress", domain.Intent{Category: domain.CategoryMotivation, Topic: TopicTracking}},
		{"motivate me", domain.Intent{Category: domain.CategoryMotivation}},
		{"I want to hydrate", domain.Intent{Category: domain.CategoryHydration}},
		{"teach me yoga", domain.Intent{Category: domain.CategoryMeditation}},
		{"hello there", domain.Intent{Category: domain.CategoryGreeting}},
		{"thanks a lot", domain.Intent{Category: domain.CategoryGratitude}},
		{"asdkjasnd", domain.Intent{Category: domain.CategoryFallback}},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.msg))
		})
	}
}

func TestClassify_FuzzyMisspellings(t *testing.T) {
	require.Equal(t, domain.CategoryWorkout, Classify("I need a wrkout").Category)
	require.Equal(t, domain.CategoryNutrition, Classify("Any proteen tips?").Category)
	require.Equal(t, domain.CategorySleep, Classify("sleeep advice").Category)
	require.Equal(t, domain.CategoryHydration, Classify("hwo much wter should i drink").Category)
	require.Equal(t, domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartArms}, Classify("bicep curls"))
}

func TestClassify_BodyPartOutranksNutrition(t *testing.T) {
	in := Classify("legs and protein")
	require.Equal(t, domain.CategoryBodyPart, in.Category)
	require.Equal(t, domain.BodyPartLegs, in.BodyPart)
}

func TestClassify_WorkoutOutranksNutrition(t *testing.T) {
	require.Equal(t, domain.CategoryWorkout, Classify("what should I eat before the gym").Category)
}

func TestClassify_ExactBodyPartBeatsFuzzyEarlierPart(t *testing.T) {
	// "hamstrng" is a misspelling of a leg word; "chest" is exact.
	in := Classify("hamstrng and chest")
	require.Equal(t, domain.BodyPartChest, in.BodyPart)
}

func TestClassify_ExactKeywordBeatsFuzzyHigherCategory(t *testing.T) {
	// Each message holds an exact keyword for the expected intent and a
	// common word one edit away from a higher-priority keyword.
	cases := []struct {
		msg  string
		want domain.Intent
	}{
		{"I need lots of sleep", domain.Intent{Category: domain.CategorySleep}},
		{"can you come up with a meal plan", domain.Intent{Category: domain.CategoryNutrition, Topic: TopicPlan}},
		{"I eat oats for breakfast", domain.Intent{Category: domain.CategoryNutrition}},
		{"I want to log my meals", domain.Intent{Category: domain.CategoryNutrition}},
		{"what is the best time to drink water", domain.Intent{Category: domain.CategoryHydration}},
		{"absolutely exhausted, need sleep", domain.Intent{Category: domain.CategorySleep}},
		{"gluten free snacks", domain.Intent{Category: domain.CategoryNutrition}},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.msg))
		})
	}
}

func TestClassify_ShortKeywordsMatchWholeWords(t *testing.T) {
	cases := []struct {
		msg  string
		want domain.Intent
	}{
		{"how do I stay fit", domain.Intent{Category: domain.CategoryWorkout}},
		{"how should I warm up", domain.Intent{Category: domain.CategoryWorkout}},
		{"sore arm", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartArms}},
		{"my abs hurt", domain.Intent{Category: domain.CategoryBodyPart, BodyPart: domain.BodyPartCore}},
		{"hi!", domain.Intent{Category: domain.CategoryGreeting}},
		{"hey, coach", domain.Intent{Category: domain.CategoryGreeting}},
		{"they said something", domain.Intent{Category: domain.CategoryFallback}},
		{"this is something else", domain.Intent{Category: domain.CategoryFallback}},
		{"I'll think about it later", domain.Intent{Category: domain.CategoryFallback}},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.msg))
		})
	}
}

func TestTokenize(t *testing.T) {
	require.Equal(t, []string{"hey", "coach", "i", "can't", "sleep"}, tokenize("  Hey, coach!  I can't sleep... "))
	require.Empty(t, tokenize(" ?! "))
}

func TestClassify_StopwordsDoNotFuzzyMatch(t *testing.T) {
	require.Equal(t, domain.CategoryFallback, Classify("how are you").Category)
}

func TestClassify_IsCaseInsensitive(t *testing.T) {
	require.Equal(t, Classify("i want leg exercises"), Classify("I WANT LEG EXERCISES"))
}

func TestClassify_Deterministic(t *testing.T) {
	for _, msg := range []string{"I want leg exercises", "hwo much wter should i drink", "asdkjasnd", "make me a meal plan"} {
		first := Classify(msg)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Classify(msg))
		}
	}
}

func TestTemplates_EveryTopicHasTemplate(t *testing.T) {
	for category, topics := range topicsByCategory {
		for _, tt := range topics {
			_, ok := templates[templateKey{category: category, topic: tt.topic}]
			require.True(t, ok, "missing template for %s:%s", category, tt.topic)
		}
	}
	for _, pt := range bodyPartTerms {
		tpl, ok := templates[templateKey{category: domain.CategoryBodyPart, part: pt.part}]
		require.True(t, ok, "missing template for %s", pt.part)
		require.Len(t, tpl.Links, 2)
		require.Equal(t, "/exercise-library/"+string(pt.part), tpl.Path)
	}
	for _, ct := range categoryTermsByPriority {
		_, ok := templates[templateKey{category: ct.category}]
		require.True(t, ok, "missing generic template for %s", ct.category)
	}
}
