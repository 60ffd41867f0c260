package local

// Keyword tables and response templates backing the deterministic capability.
// These mirror the classification vocabulary the remote personas are prompted
// to use, so both providers are interchangeable from the pipeline's view.

// emotionKeywords scores the dominant emotion. Categories are checked in
// declaration order when scores tie, so the earlier category wins.
var emotionKeywords = []struct {
	label   string
	markers []string
}{
	{"anxiety", []string{"anxious", "anxiety", "worried", "worry", "nervous", "overwhelmed", "panic"}},
	{"sadness", []string{"sad", "depressed", "depression", "down", "melancholy", "grief", "sorrow", "hopeless"}},
	{"anger", []string{"angry", "furious", "mad", "irritated", "rage", "annoyed"}},
	{"fear", []string{"afraid", "scared", "terrified", "frightened"}},
	{"joy", []string{"happy", "excited", "joyful", "delighted", "cheerful", "elated"}},
}

// cbtTemplates are the per-emotion therapeutic responses.
var cbtTemplates = map[string]string{
	"anxiety": `I understand you're experiencing anxiety. Let's work through this together using CBT techniques:

1. **Thought Identification**: What specific thoughts are contributing to your anxiety?
2. **Reality Testing**: Are these thoughts based on facts or assumptions?
3. **Breathing Exercise**: Try the 4-7-8 technique - inhale for 4, hold for 7, exhale for 8.
4. **Grounding**: Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.

Remember: Anxiety often comes from worrying about future events. Focus on what you can control right now.`,

	"sadness": `I hear that you're going through a difficult time. Depression can feel overwhelming, but CBT can help:

1. **Thought Challenging**: Notice negative self-talk and ask "Is this thought helpful or accurate?"
2. **Behavioral Activation**: Start with small, achievable activities that used to bring you joy.
3. **Daily Structure**: Create a simple routine to provide stability and purpose.
4. **Self-Compassion**: Treat yourself with the same kindness you'd show a good friend.

Small steps forward are still progress. You don't have to face this alone.`,

	"anger": `Anger can be a valid emotion, and we can work on managing it constructively:

1. **Pause and Breathe**: Before reacting, take 5 deep breaths to create space.
2. **Identify Triggers**: What specifically triggered this anger? Is there an underlying need?
3. **Thought Reframing**: Ask "Is there another way to view this situation?"
4. **Physical Release**: Consider exercise, journaling, or other healthy outlets.

Anger often masks other emotions like hurt or fear. Let's explore what's underneath together.`,

	"fear": `Fear is your mind trying to protect you, and we can work with it rather than against it:

1. **Name It**: Putting the fear into words reduces its grip.
2. **Reality Testing**: How likely is the feared outcome, really?
3. **Gradual Exposure**: Approach what scares you in small, manageable steps.
4. **Grounding**: Anchor yourself in the present with slow breathing and your senses.

Courage isn't the absence of fear; it's moving forward with support alongside it.`,

	"joy": `It's wonderful to hear a positive note. Let's build on what's working:

1. **Savoring**: Take a moment to fully register what feels good right now.
2. **Gratitude Practice**: Note what contributed to this feeling.
3. **Strength Spotting**: Which of your habits or choices helped you get here?
4. **Sustainable Routines**: Plan how to keep these supports in place.

Positive moments are worth understanding just as much as difficult ones.`,

	"neutral": `It's wonderful that you're checking in with your mental health:

1. **Mindful Awareness**: Regular self-reflection helps maintain emotional balance.
2. **Preventive Care**: Continue practices that support your wellbeing.
3. **Growth Mindset**: Consider areas where you'd like to develop or improve.
4. **Gratitude Practice**: Reflect on positive aspects of your current situation.

Maintaining mental health is an ongoing journey, and you're taking positive steps.`,
}

// scheduleTemplate is the structured recommendation payload.
type scheduleTemplate struct {
	ImmediateActions []string `json:"immediate_actions"`
	DailyPractices   []string `json:"daily_practices"`
	WeeklyGoals      []string `json:"weekly_goals"`
	Resources        []string `json:"resources"`
	Timeline         string   `json:"timeline"`
	CheckInFrequency string   `json:"check_in_frequency"`
}

var scheduleTemplates = map[string]scheduleTemplate{
	"anxiety": {
		ImmediateActions: []string{
			"Practice 4-7-8 breathing exercise",
			"Complete grounding technique (5-4-3-2-1)",
			"Write down current worry triggers",
		},
		DailyPractices: []string{
			"Morning mindfulness (5-10 minutes)",
			"Evening worry journal",
			"Progressive muscle relaxation before bed",
		},
		WeeklyGoals: []string{
			"Identify and challenge one negative thought pattern",
			"Practice one new coping strategy",
			"Engage in one anxiety-reducing activity",
		},
		Resources: []string{
			"Anxiety and Worry Workbook",
			"Headspace or Calm app",
			"Local anxiety support groups",
		},
		Timeline:         "structured - follow daily",
		CheckInFrequency: "daily for first week, then weekly",
	},
	"sadness": {
		ImmediateActions: []string{
			"Set one small, achievable goal for today",
			"Reach out to one supportive person",
			"Engage in 10 minutes of gentle movement",
		},
		DailyPractices: []string{
			"Morning routine establishment",
			"Mood tracking",
			"One enjoyable activity (however small)",
		},
		WeeklyGoals: []string{
			"Increase one pleasant activity",
			"Challenge one negative thought pattern",
			"Maintain consistent sleep schedule",
		},
		Resources: []string{
			"Depression self-help workbooks",
			"Mood tracking apps",
			"Online support communities",
		},
		Timeline:         "flexible - adapt as needed",
		CheckInFrequency: "daily for first two weeks",
	},
	"anger": {
		ImmediateActions: []string{
			"Take 5 deep breaths",
			"Step away from triggering situation if possible",
			"Write down feelings without judgment",
		},
		DailyPractices: []string{
			"Stress check-ins (morning, afternoon, evening)",
			"Physical exercise or movement",
			"Relaxation technique practice",
		},
		WeeklyGoals: []string{
			"Identify main stress/anger triggers",
			"Practice one new coping strategy",
			"Implement one stress-reduction change",
		},
		Resources: []string{
			"Stress management workshops",
			"Exercise or yoga classes",
			"Time management tools",
		},
		Timeline:         "flexible - adapt as needed",
		CheckInFrequency: "weekly",
	},
}

var defaultSchedule = scheduleTemplate{
	ImmediateActions: []string{"Take a short mindful pause", "Note how you are feeling right now"},
	DailyPractices:   []string{"Brief daily self check-in", "One restorative activity"},
	WeeklyGoals:      []string{"Review what supported your wellbeing this week"},
	Resources:        []string{"General mental wellness guides", "Mindfulness apps"},
	Timeline:         "flexible",
	CheckInFrequency: "weekly",
}

// Review checklists: any hit marks the response for revision.
var (
	dismissivePhrases = []string{
		"just get over it", "it's all in your head", "you're overreacting",
		"others have it worse", "just be happy",
	}
	medicalTerms = []string{
		"diagnose", "medication", "prescription", "treatment plan",
	}
	boundaryPromises = []string{
		"i can cure", "i guarantee", "this will fix", "you will be cured",
	}
)
