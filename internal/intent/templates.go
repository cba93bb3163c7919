package intent

import "fitlife-assistant/internal/domain"

// Template is the fixed reply for one (category, body part, topic) key.
// Path, when set, becomes the reply's navigation target.
type Template struct {
	Persona domain.Persona
	Text    string
	Links   []domain.SuggestedLink
	Path    string
}

type templateKey struct {
	category domain.Category
	part     domain.BodyPart
	topic    string
}

const (
	pathExerciseLibrary  = "/exercise-library"
	pathWorkoutGenerator = "/workout-generator"
	pathMealPlanner      = "/meal-planner"
	pathChallenges       = "/challenges"
	pathReports          = "/reports"
	pathMeditationYoga   = "/meditation-yoga"
)

var (
	workoutLinks = []domain.SuggestedLink{
		{Label: "Beginner Workout Routine", URL: "https://www.youtube.com/results?search_query=beginner+workout+routine"},
		{Label: "HIIT Workout", URL: "https://www.youtube.com/results?search_query=hiit+workout+routine"},
	}
	nutritionLinks = []domain.SuggestedLink{
		{Label: "Healthy Meal Prep Ideas", URL: "https://www.youtube.com/results?search_query=healthy+meal+prep+ideas"},
		{Label: "Nutrition Tips for Fitness", URL: "https://www.youtube.com/results?search_query=nutrition+tips+for+fitness"},
	}
	meditationLinks = []domain.SuggestedLink{
		{Label: "Beginner Yoga Routine", URL: "https://www.youtube.com/results?search_query=beginner+yoga+routine"},
		{Label: "Meditation for Beginners", URL: "https://www.youtube.com/results?search_query=meditation+for+beginners"},
	}
)

var templates = map[templateKey]Template{
	// Body parts.
	{category: domain.CategoryBodyPart, part: domain.BodyPartLegs}: {
		Persona: domain.PersonaTrainer,
		Text: "I have some great leg workouts for you! Build your legs on compound movements like squats, lunges, and deadlifts. " +
			"Aim for 3-4 sets of 8-12 reps with clean form. Let me show you our leg exercise collection with video demonstrations.",
		Links: []domain.SuggestedLink{
			{Label: "Complete Leg Workout", URL: "https://www.youtube.com/watch?v=RjexvOAsVtI"},
			{Label: "Bodyweight Leg Exercises", URL: "https://www.youtube.com/watch?v=xqVBoyKXbsA"},
		},
		Path: pathExerciseLibrary + "/legs",
	},
	{category: domain.CategoryBodyPart, part: domain.BodyPartArms}: {
		Persona: domain.PersonaTrainer,
		Text: "Looking to build stronger arms? Train both biceps (curls, chin-ups) and triceps (dips, extensions) for balance. " +
			"Aim for 3 sets of 10-15 reps with controlled movements through the full range of motion. Here are some arm exercises with video demonstrations!",
		Links: []domain.SuggestedLink{
			{Label: "Complete Arms Workout", URL: "https://www.youtube.com/watch?v=dhGnHk_d6vc"},
			{Label: "Biceps & Triceps Exercises", URL: "https://www.youtube.com/watch?v=SuajkDYlIRw"},
		},
		Path: pathExerciseLibrary + "/arms",
	},
	{category: domain.CategoryBodyPart, part: domain.BodyPartChest}: {
		Persona: domain.PersonaTrainer,
		Text: "Want to develop your chest? Mix flat, incline, and decline movements to hit every part of the pectorals. " +
			"Keep your shoulder blades retracted and control each rep. Here are some effective chest exercises with video tutorials!",
		Links: []domain.SuggestedLink{
			{Label: "Complete Chest Workout", URL: "https://www.youtube.com/watch?v=89e518dl4I8"},
			{Label: "Home Chest Exercises", URL: "https://www.youtube.com/watch?v=BkS1-El_WlE"},
		},
		Path: pathExerciseLibrary + "/chest",
	},
	{category: domain.CategoryBodyPart, part: domain.BodyPartBack}: {
		Persona: domain.PersonaTrainer,
		Text: "A strong back is essential for posture and overall strength. Include vertical pulls (pull-ups, lat pulldowns) and horizontal pulls (rows). " +
			"Engage your lats and keep a neutral spine. Here are some effective back exercises with video demonstrations!",
		Links: []domain.SuggestedLink{
			{Label: "Complete Back Workout", URL: "https://www.youtube.com/watch?v=eE7dzM0iexc"},
			{Label: "Home Back Exercises", URL: "https://www.youtube.com/watch?v=arTEns9KE00"},
		},
		Path: pathExerciseLibrary + "/back",
	},
	{category: domain.CategoryBodyPart, part: domain.BodyPartCore}: {
		Persona: domain.PersonaTrainer,
		Text: "Core strength matters for overall fitness and injury prevention. Work the rectus abdominis, obliques, and transverse abdominis " +
			"with both dynamic movements and static holds like planks. Here are some effective core exercises with video tutorials!",
		Links: []domain.SuggestedLink{
			{Label: "Complete Ab Workout", URL: "https://www.youtube.com/watch?v=3p8EBPVZ2Iw"},
			{Label: "Home Core Exercises", URL: "https://www.youtube.com/watch?v=yOl8BgLAXJ8"},
		},
		Path: pathExerciseLibrary + "/core",
	},

	// General workout.
	{category: domain.CategoryWorkout}: {
		Persona: domain.PersonaTrainer,
		Text: "Check out our exercise library for workout ideas! A balanced routine trains every major muscle group at an intensity " +
			"that suits your fitness level. Which body part would you like to focus on?",
		Links: workoutLinks,
		Path:  pathExerciseLibrary,
	},
	{category: domain.CategoryWorkout, topic: TopicPlan}: {
		Persona: domain.PersonaTrainer,
		Text: "I can build a personalized workout plan around your goals, fitness level, and equipment. For steady results, train 3-5 times a week " +
			"with a mix of strength, cardio, and flexibility work. Let me take you to our workout generator!",
		Path: pathWorkoutGenerator,
	},
	{category: domain.CategoryWorkout, topic: TopicForm}: {
		Persona: domain.PersonaTrainer,
		Text: "Good form makes workouts effective and keeps you injury free. Keep a neutral spine, control the movement through the full range of motion, " +
			"exhale on exertion, and master the technique with lighter weights before adding load.",
	},
	{category: domain.CategoryWorkout, topic: TopicBeginner}: {
		Persona: domain.PersonaTrainer,
		Text: "If you're just starting out, do 2-3 full-body workouts per week built on compound movements (squats, push-ups, rows). " +
			"Begin with bodyweight or light resistance, add load as you gain strength, and rest 1-2 days between sessions.",
	},

	// Nutrition.
	{category: domain.CategoryNutrition}: {
		Persona: domain.PersonaNutritionist,
		Text: "Good nutrition drives your fitness results. Focus on whole foods, enough protein, balanced macronutrients, hydration, and consistency. " +
			"Our meal planner can help you build a nutrition strategy around your goals!",
		Links: nutritionLinks,
		Path:  pathMealPlanner,
	},
	{category: domain.CategoryNutrition, topic: TopicPlan}: {
		Persona: domain.PersonaNutritionist,
		Text: "Let's build a balanced meal plan: 1) estimate your daily calorie needs from activity level and goals, 2) split macros at roughly " +
			"40-50% carbs, 25-35% protein, and 20-30% fat, 3) eat a variety of whole foods, and 4) plan regular meals and snacks. Let me take you to our meal planner!",
		Links: nutritionLinks,
		Path:  pathMealPlanner,
	},
	{category: domain.CategoryNutrition, topic: TopicProtein}: {
		Persona: domain.PersonaNutritionist,
		Text: "Protein drives muscle growth and recovery. If you strength train, aim for 1.6-2.2g per kg of bodyweight a day from lean meats, eggs, dairy, " +
			"legumes, tofu, or tempeh, spread across meals at 20-40g each.",
		Path: pathMealPlanner,
	},
	{category: domain.CategoryNutrition, topic: TopicCarbs}: {
		Persona: domain.PersonaNutritionist,
		Text: "Carbohydrates are your main fuel for high-intensity exercise. Choose complex carbs like whole grains, fruit, vegetables, and legumes. " +
			"Eat larger portions 1-3 hours before training and within 30-60 minutes after it.",
		Path: pathMealPlanner,
	},
	{category: domain.CategoryNutrition, topic: TopicFat}: {
		Persona: domain.PersonaNutritionist,
		Text: "Healthy fats support hormone production and nutrient absorption. Get them from avocados, nuts, seeds, olive oil, and fatty fish, " +
			"aim for 20-30% of daily calories, limit saturated fat, and avoid trans fats.",
		Path: pathMealPlanner,
	},
	{category: domain.CategoryNutrition, topic: TopicRecipe}: {
		Persona: domain.PersonaNutritionist,
		Text: "Healthy cooking can be simple: sheet pan dinners with lean protein and vegetables, colorful grain bowls, or overnight oats with fruit and nuts. " +
			"Season with herbs and spices instead of extra salt, and grill, steam, or air fry.",
		Path: pathMealPlanner,
	},

	// Sleep.
	{category: domain.CategorySleep}: {
		Persona: domain.PersonaSleepCoach,
		Text: "Quality sleep drives recovery, performance, and overall health. Aim for 7-9 hours a night: it improves muscle repair, " +
			"hormone regulation, focus, and even appetite control.",
	},
	{category: domain.CategorySleep, topic: TopicInsomnia}: {
		Persona: domain.PersonaSleepCoach,
		Text: "To sleep better, keep a consistent schedule (weekends too), wind down with a relaxing routine, cut screens 1-2 hours before bed, " +
			"keep the bedroom cool (18-20°C), dark, and quiet, and skip caffeine after midday.",
	},
	{category: domain.CategorySleep, topic: TopicNap}: {
		Persona: domain.PersonaSleepCoach,
		Text: "Strategic naps boost alertness. Take 10-20 minutes for a quick refresh or 90 minutes for a full sleep cycle, " +
			"and nap before 3pm so your night's sleep stays intact.",
	},
	{category: domain.CategorySleep, topic: TopicRecovery}: {
		Persona: domain.PersonaSleepCoach,
		Text: "Deep sleep is when your body releases growth hormone and repairs muscle tissue. Aim for 7-9 hours, especially after hard training days. " +
			"Treat sleep as part of your training plan!",
	},
	{category: domain.CategorySleep, topic: TopicTracking}: {
		Persona: domain.PersonaSleepCoach,
		Text: "Tracking sleep reveals patterns. Watch both quantity (7-9 hours) and quality (few disruptions, waking rested), " +
			"and note caffeine, evening activity, and stress alongside your sleep log.",
	},

	// Motivation.
	{category: domain.CategoryMotivation}: {
		Persona: domain.PersonaMotivator,
		Text: "Consistency beats perfection! Every workout, healthy meal, and good night's sleep is a win, and on tough days just showing up counts. " +
			"Your fitness journey is a marathon, so celebrate each step forward!",
		Path: pathChallenges,
	},
	{category: domain.CategoryMotivation, topic: TopicPlateau}: {
		Persona: domain.PersonaMotivator,
		Text: "A plateau means you've already made progress! Break through by changing your routine every 4-6 weeks, raising intensity or volume gradually, " +
			"trying new modalities, reviewing your nutrition, and recovering properly.",
		Path: pathChallenges,
	},
	{category: domain.CategoryMotivation, topic: TopicGoals}: {
		Persona: domain.PersonaMotivator,
		Text: "Set SMART goals: Specific, Measurable, Achievable, Relevant, and Time-bound. Break big goals into smaller milestones " +
			"and celebrate each one along the way!",
		Path: pathChallenges,
	},
	{category: domain.CategoryMotivation, topic: TopicHabits}: {
		Persona: domain.PersonaMotivator,
		Text: "Lasting habits start small. Attach new habits to existing routines, remove friction (lay out gym clothes the night before), " +
			"use reminders, and track your streak. Small and consistent beats ambitious and sporadic!",
	},
	{category: domain.CategoryMotivation, topic: TopicTracking}: {
		Persona: domain.PersonaMotivator,
		Text: "Tracking progress keeps you motivated! Look beyond the scale: measurements, fitness tests, workout performance, energy, sleep, " +
			"and progress photos. Our reports help you spot the improvements.",
		Path: pathReports,
	},

	// Remaining categories.
	{category: domain.CategoryHydration}: {
		Persona: domain.PersonaNutritionist,
		Text: "Staying hydrated is essential for performance! Drink at least 8 glasses (2-3 liters) of water a day, and more during intense workouts " +
			"or hot weather. Good hydration improves energy, recovery, and focus.",
	},
	{category: domain.CategoryMeditation}: {
		Persona: domain.PersonaSleepCoach,
		Text: "Meditation and yoga are powerful tools for mental wellbeing and recovery. Regular practice lowers stress, improves sleep, sharpens focus, " +
			"and increases flexibility, and even 5-10 minutes a day helps. Let me show you our guided sessions.",
		Links: meditationLinks,
		Path:  pathMeditationYoga,
	},
	{category: domain.CategoryGreeting}: {
		Persona: domain.PersonaAssistant,
		Text: "Hello! I'm your AI health assistant: personal trainer, nutritionist, motivator, and sleep coach in one. How can I help with your fitness journey today?",
	},
	{category: domain.CategoryGratitude}: {
		Persona: domain.PersonaAssistant,
		Text: "You're welcome! I'm here to support your health and fitness goals. Is there anything else I can help with?",
	},
	{category: domain.CategoryFallback}: {
		Persona: domain.PersonaAssistant,
		Text: "I'm your health assistant with expertise as a personal trainer, nutritionist, motivator, and sleep coach. " +
			"Ask me anything about workouts, nutrition plans, motivation, sleep, or your wellness journey!",
	},
}

// lookupTemplate falls back to the category's generic template when a topic
// has no dedicated entry.
func lookupTemplate(in domain.Intent) Template {
	if t, ok := templates[templateKey{category: in.Category, part: in.BodyPart, topic: in.Topic}]; ok {
		return t
	}
	if t, ok := templates[templateKey{category: in.Category, part: in.BodyPart}]; ok {
		return t
	}
	return templates[templateKey{category: domain.CategoryFallback}]
}
