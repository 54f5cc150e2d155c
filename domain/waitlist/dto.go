package waitlist

import (
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/arrahmanlabs/waitlist-api/pkg/constants"
)

// SubmitWaitlistRequest is the survey payload. Field names are the wire
// contract of the client wizard; enum membership is checked by the service
// against the survey catalog, binding tags only cover shape.
type SubmitWaitlistRequest struct {
	FullName                string   `json:"fullName" binding:"required,min=1,max=255"`
	Email                   string   `json:"email" binding:"required,email,max=255"`
	Role                    string   `json:"role" binding:"omitempty,max=255"`
	Age                     string   `json:"age" binding:"required,max=64"`
	PrayerFrequency         string   `json:"prayerFrequency" binding:"required,max=64"`
	ArabicUnderstanding     string   `json:"arabicUnderstanding" binding:"required,max=64"`
	UnderstandingDifficulty string   `json:"understandingDifficulty" binding:"required,max=64"`
	Importance              string   `json:"importance" binding:"required,max=64"`
	LearningStruggle        string   `json:"learningStruggle" binding:"required,max=64"`
	CurrentApproach         string   `json:"currentApproach" binding:"required,max=64"`
	ARExperience            string   `json:"arExperience" binding:"required,max=64"`
	ARInterest              string   `json:"arInterest" binding:"required,max=64"`
	Features                []string `json:"features" binding:"required,min=1,max=3"`
	Likelihood              string   `json:"likelihood" binding:"omitempty,max=64"`
	AdditionalFeedback      string   `json:"additionalFeedback" binding:"omitempty,max=5000"`
	InterviewWillingness    string   `json:"interviewWillingness" binding:"required,max=64"`
	InvestorPresentation    string   `json:"investorPresentation" binding:"omitempty,max=64"`
	AdditionalComments      string   `json:"additionalComments" binding:"omitempty,max=5000"`
}

type WaitlistResponseItem struct {
	ID                      uint     `json:"id"`
	FullName                string   `json:"fullName"`
	Email                   string   `json:"email"`
	Role                    string   `json:"role,omitempty"`
	Age                     string   `json:"age"`
	PrayerFrequency         string   `json:"prayerFrequency"`
	ArabicUnderstanding     string   `json:"arabicUnderstanding"`
	UnderstandingDifficulty string   `json:"understandingDifficulty"`
	Importance              string   `json:"importance"`
	LearningStruggle        string   `json:"learningStruggle"`
	CurrentApproach         string   `json:"currentApproach"`
	ARExperience            string   `json:"arExperience"`
	ARInterest              string   `json:"arInterest"`
	Features                []string `json:"features"`
	Likelihood              string   `json:"likelihood,omitempty"`
	AdditionalFeedback      string   `json:"additionalFeedback,omitempty"`
	InterviewWillingness    string   `json:"interviewWillingness"`
	InvestorPresentation    string   `json:"investorPresentation,omitempty"`
	AdditionalComments      string   `json:"additionalComments,omitempty"`
	CreatedAt               string   `json:"createdAt"`
}

type CountData struct {
	Count int64 `json:"count"`
}

type DeleteData struct {
	Deleted bool `json:"deleted"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistResponseModel(req *SubmitWaitlistRequest) *models.WaitlistResponse {
	if req == nil {
		return nil
	}
	return &models.WaitlistResponse{
		FullName:                req.FullName,
		Email:                   req.Email,
		Role:                    req.Role,
		Age:                     req.Age,
		PrayerFrequency:         req.PrayerFrequency,
		ArabicUnderstanding:     req.ArabicUnderstanding,
		UnderstandingDifficulty: req.UnderstandingDifficulty,
		Importance:              req.Importance,
		LearningStruggle:        req.LearningStruggle,
		CurrentApproach:         req.CurrentApproach,
		ARExperience:            req.ARExperience,
		ARInterest:              req.ARInterest,
		Features:                models.FeatureList(req.Features),
		Likelihood:              req.Likelihood,
		AdditionalFeedback:      req.AdditionalFeedback,
		InterviewWillingness:    req.InterviewWillingness,
		InvestorPresentation:    req.InvestorPresentation,
		AdditionalComments:      req.AdditionalComments,
	}
}

func ToWaitlistResponseItem(response *models.WaitlistResponse) WaitlistResponseItem {
	if response == nil {
		return WaitlistResponseItem{}
	}
	return WaitlistResponseItem{
		ID:                      response.ID,
		FullName:                response.FullName,
		Email:                   response.Email,
		Role:                    response.Role,
		Age:                     response.Age,
		PrayerFrequency:         response.PrayerFrequency,
		ArabicUnderstanding:     response.ArabicUnderstanding,
		UnderstandingDifficulty: response.UnderstandingDifficulty,
		Importance:              response.Importance,
		LearningStruggle:        response.LearningStruggle,
		CurrentApproach:         response.CurrentApproach,
		ARExperience:            response.ARExperience,
		ARInterest:              response.ARInterest,
		Features:                response.Features,
		Likelihood:              response.Likelihood,
		AdditionalFeedback:      response.AdditionalFeedback,
		InterviewWillingness:    response.InterviewWillingness,
		InvestorPresentation:    response.InvestorPresentation,
		AdditionalComments:      response.AdditionalComments,
		CreatedAt:               response.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
