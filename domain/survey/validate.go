package survey

import (
	"fmt"

	"github.com/arrahmanlabs/waitlist-api/internal/models"
)

// FieldError names one rejected field, in the shape the envelope's data
// payload carries for validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field rejections so handlers can return
// them as the response payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("survey validation failed for %d field(s)", len(e.Fields))
}

var optionCatalog = map[string][]Option{
	FieldAge:                     ageOptions,
	FieldPrayerFrequency:         prayerFrequencyOptions,
	FieldArabicUnderstanding:     arabicUnderstandingOptions,
	FieldUnderstandingDifficulty: understandingDifficultyOptions,
	FieldImportance:              importanceOptions,
	FieldLearningStruggle:        learningStruggleOptions,
	FieldCurrentApproach:         currentApproachOptions,
	FieldARExperience:            arExperienceOptions,
	FieldARInterest:              arInterestOptions,
	FieldFeatures:                featureOptions,
	FieldLikelihood:              likelihoodOptions,
	FieldInterviewWillingness:    interviewWillingnessOptions,
	FieldInvestorPresentation:    investorPresentationOptions,
}

// IsAllowedValue reports whether value belongs to the option set of the
// named field. Fields without an option set accept any value.
func IsAllowedValue(field, value string) bool {
	options, ok := optionCatalog[field]
	if !ok {
		return true
	}

	for _, option := range options {
		if option.Value == value {
			return true
		}
	}

	return false
}

// ValidateResponse checks a submission against the option catalog: required
// enum fields must carry a listed value, optional enum fields may be empty
// but not off-catalog, and the features list must hold one to three listed
// tokens with no duplicates. Returns nil when the submission is valid.
func ValidateResponse(response *models.WaitlistResponse) []FieldError {
	var fieldErrors []FieldError

	requiredEnums := map[string]string{
		FieldAge:                     response.Age,
		FieldPrayerFrequency:         response.PrayerFrequency,
		FieldArabicUnderstanding:     response.ArabicUnderstanding,
		FieldUnderstandingDifficulty: response.UnderstandingDifficulty,
		FieldImportance:              response.Importance,
		FieldLearningStruggle:        response.LearningStruggle,
		FieldCurrentApproach:         response.CurrentApproach,
		FieldARExperience:            response.ARExperience,
		FieldARInterest:              response.ARInterest,
		FieldInterviewWillingness:    response.InterviewWillingness,
	}

	optionalEnums := map[string]string{
		FieldLikelihood:           response.Likelihood,
		FieldInvestorPresentation: response.InvestorPresentation,
	}

	for _, field := range enumFieldOrder {
		if value, ok := requiredEnums[field]; ok {
			if value == "" {
				fieldErrors = append(fieldErrors, FieldError{Field: field, Message: "is required"})
			} else if !IsAllowedValue(field, value) {
				fieldErrors = append(fieldErrors, FieldError{Field: field, Message: fmt.Sprintf("%q is not a recognized option", value)})
			}
			continue
		}

		if value, ok := optionalEnums[field]; ok && value != "" && !IsAllowedValue(field, value) {
			fieldErrors = append(fieldErrors, FieldError{Field: field, Message: fmt.Sprintf("%q is not a recognized option", value)})
		}
	}

	fieldErrors = append(fieldErrors, validateFeatures(response.Features)...)

	return fieldErrors
}

// enumFieldOrder keeps validation output stable for clients and tests.
var enumFieldOrder = []string{
	FieldAge,
	FieldPrayerFrequency,
	FieldArabicUnderstanding,
	FieldUnderstandingDifficulty,
	FieldImportance,
	FieldLearningStruggle,
	FieldCurrentApproach,
	FieldARExperience,
	FieldARInterest,
	FieldLikelihood,
	FieldInterviewWillingness,
	FieldInvestorPresentation,
}

func validateFeatures(features []string) []FieldError {
	if len(features) == 0 {
		return []FieldError{{Field: FieldFeatures, Message: "select at least one feature"}}
	}

	if len(features) > MaxFeatureSelections {
		return []FieldError{{Field: FieldFeatures, Message: fmt.Sprintf("select at most %d features", MaxFeatureSelections)}}
	}

	seen := make(map[string]bool, len(features))
	for _, feature := range features {
		if !IsAllowedValue(FieldFeatures, feature) {
			return []FieldError{{Field: FieldFeatures, Message: fmt.Sprintf("%q is not a recognized feature", feature)}}
		}
		if seen[feature] {
			return []FieldError{{Field: FieldFeatures, Message: fmt.Sprintf("%q is selected more than once", feature)}}
		}
		seen[feature] = true
	}

	return nil
}
