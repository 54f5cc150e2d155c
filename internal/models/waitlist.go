package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FeatureList is a JSON-encoded array of feature tokens. Stored as a jsonb
// column on Postgres and as serialized text on SQLite (tests).
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		f = FeatureList{}
	}
	return json.Marshal(f)
}

func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = FeatureList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("unsupported type %T for FeatureList", value)
	}
}

// WaitlistResponse is one submitted survey record. Rows are created once by
// the intake endpoint and never updated in place.
type WaitlistResponse struct {
	ID                      uint        `gorm:"primaryKey" json:"id"`
	FullName                string      `gorm:"not null" json:"fullName"`
	Email                   string      `gorm:"not null;index" json:"email"`
	Role                    string      `json:"role"`
	Age                     string      `gorm:"not null" json:"age"`
	PrayerFrequency         string      `gorm:"not null" json:"prayerFrequency"`
	ArabicUnderstanding     string      `gorm:"not null" json:"arabicUnderstanding"`
	UnderstandingDifficulty string      `gorm:"not null" json:"understandingDifficulty"`
	Importance              string      `gorm:"not null" json:"importance"`
	LearningStruggle        string      `gorm:"not null" json:"learningStruggle"`
	CurrentApproach         string      `gorm:"not null" json:"currentApproach"`
	ARExperience            string      `gorm:"column:ar_experience;not null" json:"arExperience"`
	ARInterest              string      `gorm:"column:ar_interest;not null" json:"arInterest"`
	Features                FeatureList `gorm:"type:jsonb;not null" json:"features"`
	Likelihood              string      `json:"likelihood"`
	AdditionalFeedback      string      `json:"additionalFeedback"`
	InterviewWillingness    string      `gorm:"not null" json:"interviewWillingness"`
	InvestorPresentation    string      `json:"investorPresentation"`
	AdditionalComments      string      `json:"additionalComments"`
	CreatedAt               time.Time   `gorm:"not null;index" json:"createdAt"`
}

func (WaitlistResponse) TableName() string {
	return "waitlist_responses"
}
