package survey

// Option is one selectable answer in a radio or checkbox field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is a single input inside a wizard step.
type Field struct {
	Name          string   `json:"name"`
	Label         string   `json:"label"`
	Kind          string   `json:"kind"` // text, email, radio, checkbox, textarea
	Required      bool     `json:"required"`
	Options       []Option `json:"options,omitempty"`
	MaxSelections int      `json:"maxSelections,omitempty"`
	Placeholder   string   `json:"placeholder,omitempty"`
}

// Step is one screen of the linear survey wizard.
type Step struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Fields   []Field `json:"fields"`
}

// FormDefinition describes the whole wizard for the client.
type FormDefinition struct {
	Steps []Step `json:"steps"`
}

const (
	FieldFullName                = "fullName"
	FieldEmail                   = "email"
	FieldRole                    = "role"
	FieldAge                     = "age"
	FieldPrayerFrequency         = "prayerFrequency"
	FieldArabicUnderstanding     = "arabicUnderstanding"
	FieldUnderstandingDifficulty = "understandingDifficulty"
	FieldImportance              = "importance"
	FieldLearningStruggle        = "learningStruggle"
	FieldCurrentApproach         = "currentApproach"
	FieldARExperience            = "arExperience"
	FieldARInterest              = "arInterest"
	FieldFeatures                = "features"
	FieldLikelihood              = "likelihood"
	FieldAdditionalFeedback      = "additionalFeedback"
	FieldInterviewWillingness    = "interviewWillingness"
	FieldInvestorPresentation    = "investorPresentation"
	FieldAdditionalComments      = "additionalComments"
)

// MaxFeatureSelections caps how many feature tokens a submission may carry.
const MaxFeatureSelections = 3

var ageOptions = []Option{
	{Value: "18-25", Label: "18-25"},
	{Value: "26-35", Label: "26-35"},
	{Value: "36-45", Label: "36-45"},
	{Value: "46-55", Label: "46-55"},
	{Value: "56-65", Label: "56-65"},
	{Value: "65+", Label: "65+"},
}

var prayerFrequencyOptions = []Option{
	{Value: "5_times_daily", Label: "5 times daily"},
	{Value: "3_4_times_daily", Label: "3-4 times daily"},
	{Value: "1_2_times_daily", Label: "1-2 times daily"},
	{Value: "weekly", Label: "Weekly"},
	{Value: "occasionally", Label: "Occasionally"},
	{Value: "rarely", Label: "Rarely"},
}

var arabicUnderstandingOptions = []Option{
	{Value: "fluent", Label: "Fluent"},
	{Value: "good", Label: "Good"},
	{Value: "basic", Label: "Basic"},
	{Value: "very_limited", Label: "Very limited"},
	{Value: "none", Label: "None"},
}

var understandingDifficultyOptions = []Option{
	{Value: "always", Label: "Always"},
	{Value: "often", Label: "Often"},
	{Value: "sometimes", Label: "Sometimes"},
	{Value: "rarely", Label: "Rarely"},
	{Value: "never", Label: "Never"},
}

var importanceOptions = []Option{
	{Value: "very_important", Label: "Very important"},
	{Value: "moderately_important", Label: "Moderately important"},
	{Value: "slightly_important", Label: "Slightly important"},
	{Value: "not_important", Label: "Not important"},
}

var learningStruggleOptions = []Option{
	{Value: "understanding_arabic", Label: "Understanding Arabic"},
	{Value: "finding_time", Label: "Finding time to study"},
	{Value: "lack_resources", Label: "Lack of good resources"},
	{Value: "staying_consistent", Label: "Staying consistent"},
	{Value: "finding_teachers", Label: "Finding qualified teachers"},
	{Value: "theory_to_practice", Label: "Moving from theory to practice"},
	{Value: "other", Label: "Other"},
}

var currentApproachOptions = []Option{
	{Value: "translation_apps", Label: "Translation apps"},
	{Value: "memorized_translations", Label: "Memorized translations"},
	{Value: "books_resources", Label: "Books and resources"},
	{Value: "ask_others", Label: "Asking others"},
	{Value: "study_before_after", Label: "Studying before or after prayer"},
	{Value: "dont_currently", Label: "I don't currently"},
	{Value: "other_method", Label: "Another method"},
}

var arExperienceOptions = []Option{
	{Value: "very_experienced", Label: "Very experienced"},
	{Value: "some_experience", Label: "Some experience"},
	{Value: "basic_knowledge", Label: "Basic knowledge"},
	{Value: "heard_about_it", Label: "Heard about it"},
	{Value: "completely_new", Label: "Completely new"},
}

var arInterestOptions = []Option{
	{Value: "life_changing", Label: "This could be life-changing"},
	{Value: "very_meaningful", Label: "Very meaningful"},
	{Value: "helpful_addition", Label: "A helpful addition"},
	{Value: "interesting_but_cautious", Label: "Interesting, but cautious"},
	{Value: "prefer_traditional", Label: "I prefer traditional methods"},
	{Value: "unsure", Label: "Unsure"},
}

var featureOptions = []Option{
	{Value: "live_translation", Label: "Live translation"},
	{Value: "pronunciation_guidance", Label: "Pronunciation guidance"},
	{Value: "qibla_indicator", Label: "Qibla indicator"},
	{Value: "prayer_times", Label: "Prayer times"},
	{Value: "hadith_overlay", Label: "Hadith overlay"},
	{Value: "tajweed_correction", Label: "Tajweed correction"},
	{Value: "history_visualization", Label: "History visualization"},
}

var likelihoodOptions = []Option{
	{Value: "extremely_likely", Label: "Extremely likely"},
	{Value: "very_likely", Label: "Very likely"},
	{Value: "moderately_likely", Label: "Moderately likely"},
	{Value: "slightly_likely", Label: "Slightly likely"},
	{Value: "not_likely_at_all", Label: "Not likely at all"},
}

var interviewWillingnessOptions = []Option{
	{Value: "yes_happy_to_help", Label: "Yes, happy to help"},
	{Value: "maybe_timing_dependent", Label: "Maybe, depending on timing"},
	{Value: "no_thank_you", Label: "No, thank you"},
}

var investorPresentationOptions = []Option{
	{Value: "yes_interested", Label: "Yes, interested"},
	{Value: "maybe_later", Label: "Maybe later"},
	{Value: "no_thank_you", Label: "No, thank you"},
}

// Form returns the wizard definition served to the client. The order and
// grouping mirror the live form: one question per screen, with the optional
// follow-ups folded into the last two steps.
func Form() FormDefinition {
	return FormDefinition{Steps: []Step{
		{
			ID:    1,
			Title: "What is your name?",
			Fields: []Field{
				{Name: FieldFullName, Label: "Full name", Kind: "text", Required: true, Placeholder: "Your full name"},
			},
		},
		{
			ID:       2,
			Title:    "Where can we reach you?",
			Subtitle: "We only use this to share early access updates.",
			Fields: []Field{
				{Name: FieldEmail, Label: "Email address", Kind: "email", Required: true, Placeholder: "you@example.com"},
			},
		},
		{
			ID:       3,
			Title:    "What best describes you?",
			Subtitle: "Optional, but it helps us understand who we are building for.",
			Fields: []Field{
				{Name: FieldRole, Label: "Role", Kind: "text", Required: false, Placeholder: "Student, parent, teacher..."},
			},
		},
		{
			ID:    4,
			Title: "What is your age range?",
			Fields: []Field{
				{Name: FieldAge, Label: "Age", Kind: "radio", Required: true, Options: ageOptions},
			},
		},
		{
			ID:    5,
			Title: "How often do you pray?",
			Fields: []Field{
				{Name: FieldPrayerFrequency, Label: "Prayer frequency", Kind: "radio", Required: true, Options: prayerFrequencyOptions},
			},
		},
		{
			ID:    6,
			Title: "How well do you understand Quranic Arabic?",
			Fields: []Field{
				{Name: FieldArabicUnderstanding, Label: "Arabic understanding", Kind: "radio", Required: true, Options: arabicUnderstandingOptions},
			},
		},
		{
			ID:    7,
			Title: "How often do you struggle to understand what you recite in prayer?",
			Fields: []Field{
				{Name: FieldUnderstandingDifficulty, Label: "Understanding difficulty", Kind: "radio", Required: true, Options: understandingDifficultyOptions},
			},
		},
		{
			ID:    8,
			Title: "How important is understanding your prayers to you?",
			Fields: []Field{
				{Name: FieldImportance, Label: "Importance", Kind: "radio", Required: true, Options: importanceOptions},
			},
		},
		{
			ID:    9,
			Title: "What is your biggest struggle in learning?",
			Fields: []Field{
				{Name: FieldLearningStruggle, Label: "Learning struggle", Kind: "radio", Required: true, Options: learningStruggleOptions},
			},
		},
		{
			ID:    10,
			Title: "How do you currently work on understanding?",
			Fields: []Field{
				{Name: FieldCurrentApproach, Label: "Current approach", Kind: "radio", Required: true, Options: currentApproachOptions},
			},
		},
		{
			ID:    11,
			Title: "How much experience do you have with augmented reality?",
			Fields: []Field{
				{Name: FieldARExperience, Label: "AR experience", Kind: "radio", Required: true, Options: arExperienceOptions},
			},
		},
		{
			ID:    12,
			Title: "How do you feel about AR-guided prayer with live translation?",
			Fields: []Field{
				{Name: FieldARInterest, Label: "AR interest", Kind: "radio", Required: true, Options: arInterestOptions},
			},
		},
		{
			ID:       13,
			Title:    "Which features matter most to you?",
			Subtitle: "Pick up to three.",
			Fields: []Field{
				{Name: FieldFeatures, Label: "Features", Kind: "checkbox", Required: true, Options: featureOptions, MaxSelections: MaxFeatureSelections},
			},
		},
		{
			ID:       14,
			Title:    "How likely are you to use AR Rahman?",
			Subtitle: "Anything else you would like to see?",
			Fields: []Field{
				{Name: FieldLikelihood, Label: "Likelihood", Kind: "radio", Required: false, Options: likelihoodOptions},
				{Name: FieldAdditionalFeedback, Label: "Additional feedback", Kind: "textarea", Required: false, Placeholder: "Optional"},
			},
		},
		{
			ID:       15,
			Title:    "One last thing",
			Subtitle: "Would you help us shape the product?",
			Fields: []Field{
				{Name: FieldInterviewWillingness, Label: "Interview willingness", Kind: "radio", Required: true, Options: interviewWillingnessOptions},
				{Name: FieldInvestorPresentation, Label: "Investor presentation", Kind: "radio", Required: false, Options: investorPresentationOptions},
				{Name: FieldAdditionalComments, Label: "Additional comments", Kind: "textarea", Required: false, Placeholder: "Optional"},
			},
		},
	}}
}
