package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/arrahmanlabs/waitlist-api/config"
	"github.com/arrahmanlabs/waitlist-api/config/router"
	"github.com/arrahmanlabs/waitlist-api/domain"
	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testAdminPassword = "integration-secret"

type WaitlistAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	logger    *log.Logger
	appConfig *config.ApplicationConfig
	sessionID string
}

func (suite *WaitlistAPITestSuite) SetupSuite() {
	suite.T().Setenv("ADMIN_PASSWORD", testAdminPassword)
	suite.T().Setenv("SENDGRID_API_KEY", "")

	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.WaitlistResponse{})
	suite.Require().NoError(err)

	suite.logger = log.NewLoggerWithJSONOutput()

	suite.appConfig = &config.ApplicationConfig{
		DB:     suite.db,
		Logger: suite.logger,
	}

	suite.appConfig.RouterService = router.CreateRouterService(suite.logger, nil, &router.RouterConfig{
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(suite.appConfig)

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL

	// One shared session keeps the suite clear of the login rate limit.
	suite.sessionID = suite.login(testAdminPassword, http.StatusOK)
}

func (suite *WaitlistAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *WaitlistAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM waitlist_responses")
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"fullName":                "Amina Yusuf",
		"email":                   "amina@example.com",
		"role":                    "student",
		"age":                     "26-35",
		"prayerFrequency":         "5_times_daily",
		"arabicUnderstanding":     "basic",
		"understandingDifficulty": "often",
		"importance":              "very_important",
		"learningStruggle":        "understanding_arabic",
		"currentApproach":         "translation_apps",
		"arExperience":            "some_experience",
		"arInterest":              "very_meaningful",
		"features":                []string{"live_translation", "prayer_times"},
		"likelihood":              "very_likely",
		"interviewWillingness":    "yes_happy_to_help",
		"investorPresentation":    "maybe_later",
	}
}

func (suite *WaitlistAPITestSuite) postJSON(path string, body interface{}, sessionID string) (*http.Response, map[string]interface{}) {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, suite.baseURL+path, bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)

	return resp, suite.decodeEnvelope(resp)
}

func (suite *WaitlistAPITestSuite) getJSON(path string, sessionID string) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(http.MethodGet, suite.baseURL+path, nil)
	suite.Require().NoError(err)
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)

	return resp, suite.decodeEnvelope(resp)
}

func (suite *WaitlistAPITestSuite) deleteJSON(path string, sessionID string) (*http.Response, map[string]interface{}) {
	req, err := http.NewRequest(http.MethodDelete, suite.baseURL+path, nil)
	suite.Require().NoError(err)
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)

	return resp, suite.decodeEnvelope(resp)
}

func (suite *WaitlistAPITestSuite) decodeEnvelope(resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()

	var envelope map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&envelope)
	suite.Require().NoError(err)

	return envelope
}

func (suite *WaitlistAPITestSuite) login(password string, expectStatus int) string {
	resp, envelope := suite.postJSON("/api/admin/login", map[string]string{"password": password}, "")
	suite.Require().Equal(expectStatus, resp.StatusCode)

	if expectStatus != http.StatusOK {
		return ""
	}

	data := envelope["data"].(map[string]interface{})
	sessionID := data["sessionId"].(string)
	suite.Require().NotEmpty(sessionID)

	return sessionID
}

func (suite *WaitlistAPITestSuite) currentCount() float64 {
	resp, envelope := suite.getJSON("/api/waitlist/count", "")
	suite.Require().Equal(http.StatusOK, resp.StatusCode)

	return envelope["data"].(map[string]interface{})["count"].(float64)
}

func (suite *WaitlistAPITestSuite) TestHealthCheck() {
	resp, envelope := suite.getJSON("/health", "")

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(float64(200), envelope["code"])
	suite.Equal(true, envelope["success"])
	suite.Contains(envelope["message"], "Health check completed")

	data := envelope["data"].(map[string]interface{})
	suite.Equal(float64(1), data["database"])
	suite.Contains(data, "uptime")
}

func (suite *WaitlistAPITestSuite) TestSubmitResponseIncrementsCount() {
	suite.Equal(float64(0), suite.currentCount())

	resp, envelope := suite.postJSON("/api/waitlist", validSubmission(), "")

	suite.Equal(http.StatusCreated, resp.StatusCode)
	suite.Equal(float64(201), envelope["code"])
	suite.Equal(true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	suite.Equal("amina@example.com", data["email"])
	suite.Equal("very_meaningful", data["arInterest"])
	suite.Contains(data, "id")
	suite.Contains(data, "createdAt")

	suite.Equal(float64(1), suite.currentCount())
}

func (suite *WaitlistAPITestSuite) TestSubmitResponseBindingError() {
	body := validSubmission()
	delete(body, "email")
	body["fullName"] = ""

	resp, envelope := suite.postJSON("/api/waitlist", body, "")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Equal(false, envelope["success"])
	suite.Contains(envelope["message"], "Invalid request payload")

	fields := map[string]bool{}
	for _, item := range envelope["data"].([]interface{}) {
		fieldError := item.(map[string]interface{})
		fields[fieldError["field"].(string)] = true
	}
	suite.True(fields["email"])
	suite.True(fields["fullName"])

	suite.Equal(float64(0), suite.currentCount())
}

func (suite *WaitlistAPITestSuite) TestSubmitResponseUnknownEnumRejected() {
	body := validSubmission()
	body["age"] = "young"

	resp, envelope := suite.postJSON("/api/waitlist", body, "")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Contains(envelope["message"], "Invalid survey submission")

	data := envelope["data"].([]interface{})
	first := data[0].(map[string]interface{})
	suite.Equal("age", first["field"])

	suite.Equal(float64(0), suite.currentCount())
}

func (suite *WaitlistAPITestSuite) TestAdminGateOnResponses() {
	resp, envelope := suite.getJSON("/api/waitlist/responses", "")
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)
	suite.Equal(false, envelope["success"])

	suite.login("wrong-password", http.StatusUnauthorized)

	suite.seedResponse("seeded@example.com", time.Now())

	resp, envelope = suite.getJSON("/api/waitlist/responses", suite.sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)

	data := envelope["data"].([]interface{})
	suite.Len(data, 1)
	suite.Equal("seeded@example.com", data[0].(map[string]interface{})["email"])
}

func (suite *WaitlistAPITestSuite) TestJSONEndpointsIgnoreQuerySessions() {
	// The query fallback exists for browser page loads only. API routes
	// take the token from the header so it never shows up in access logs.
	resp, envelope := suite.getJSON("/api/waitlist/responses?session="+suite.sessionID, "")
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)
	suite.Equal(false, envelope["success"])
}

func (suite *WaitlistAPITestSuite) TestResponsesOrderedNewestFirst() {
	suite.seedResponse("older@example.com", time.Now().Add(-48*time.Hour))
	suite.seedResponse("newer@example.com", time.Now())

	resp, envelope := suite.getJSON("/api/waitlist/responses", suite.sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)

	data := envelope["data"].([]interface{})
	suite.Require().Len(data, 2)
	suite.Equal("newer@example.com", data[0].(map[string]interface{})["email"])
	suite.Equal("older@example.com", data[1].(map[string]interface{})["email"])
}

func (suite *WaitlistAPITestSuite) TestDeleteResponseIsIdempotent() {
	id := suite.seedResponse("target@example.com", time.Now())

	path := fmt.Sprintf("/api/waitlist/%d", id)

	resp, envelope := suite.deleteJSON(path, "")
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, envelope = suite.deleteJSON(path, suite.sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, envelope["data"].(map[string]interface{})["deleted"])

	// A repeat delete is still a 200, it just reports nothing was removed.
	resp, envelope = suite.deleteJSON(path, suite.sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(false, envelope["data"].(map[string]interface{})["deleted"])

	suite.Equal(float64(0), suite.currentCount())
}

func (suite *WaitlistAPITestSuite) TestAnalytics() {
	now := time.Now()
	suite.seedResponse("a@example.com", now)
	suite.seedResponse("b@example.com", now)

	resp, envelope := suite.getJSON("/api/waitlist/analytics", "")
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, envelope = suite.getJSON("/api/waitlist/analytics", suite.sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	suite.Equal(float64(2), data["totalResponses"])

	ages := data["ageDistribution"].(map[string]interface{})
	suite.Equal(float64(2), ages["26-35"])

	// Two responses picking two features each flatten into four tallies.
	features := data["featuresDistribution"].(map[string]interface{})
	suite.Equal(float64(2), features["live_translation"])
	suite.Equal(float64(2), features["prayer_times"])

	daily := data["dailySubmissions"].([]interface{})
	suite.Require().Len(daily, 1)
	suite.Equal(float64(2), daily[0].(map[string]interface{})["count"])
}

func (suite *WaitlistAPITestSuite) TestSessionStatusAndLogout() {
	sessionID := suite.login(testAdminPassword, http.StatusOK)

	resp, envelope := suite.getJSON("/api/admin/status", sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, envelope["data"].(map[string]interface{})["authenticated"])

	resp, _ = suite.postJSON("/api/admin/logout", nil, sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)

	resp, envelope = suite.getJSON("/api/admin/status", sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(false, envelope["data"].(map[string]interface{})["authenticated"])

	// Logout is idempotent.
	resp, _ = suite.postJSON("/api/admin/logout", nil, sessionID)
	suite.Equal(http.StatusOK, resp.StatusCode)
}

func (suite *WaitlistAPITestSuite) TestSurveyForm() {
	resp, envelope := suite.getJSON("/api/survey/form", "")

	suite.Equal(http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	steps := data["steps"].([]interface{})
	suite.Len(steps, 15)

	last := steps[len(steps)-1].(map[string]interface{})
	suite.Equal(float64(15), last["id"])
}

func (suite *WaitlistAPITestSuite) TestDashboardPage() {
	req, err := http.NewRequest(http.MethodGet, suite.baseURL+"/admin/dashboard", nil)
	suite.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	resp.Body.Close()
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)

	// Browser navigation carries the token as a query parameter.
	resp, err = http.Get(suite.baseURL + "/admin/dashboard?session=" + suite.sessionID)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	suite.Contains(string(body), "Dashboard")
}

func (suite *WaitlistAPITestSuite) TestExportCSV() {
	suite.seedResponse("csv@example.com", time.Now())

	req, err := http.NewRequest(http.MethodGet, suite.baseURL+"/api/backup/export-csv", nil)
	suite.Require().NoError(err)
	req.Header.Set("X-Session-Id", suite.sessionID)

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(resp.Header.Get("Content-Type"), "text/csv")
	suite.Contains(resp.Header.Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	suite.Require().Len(lines, 2)
	suite.Contains(lines[0], "fullName")
	suite.Contains(lines[1], "csv@example.com")
}

func (suite *WaitlistAPITestSuite) seedResponse(email string, createdAt time.Time) uint {
	response := models.WaitlistResponse{
		FullName:                "Seeded User",
		Email:                   email,
		Age:                     "26-35",
		PrayerFrequency:         "5_times_daily",
		ArabicUnderstanding:     "basic",
		UnderstandingDifficulty: "often",
		Importance:              "very_important",
		LearningStruggle:        "understanding_arabic",
		CurrentApproach:         "translation_apps",
		ARExperience:            "some_experience",
		ARInterest:              "very_meaningful",
		Features:                models.FeatureList{"live_translation", "prayer_times"},
		InterviewWillingness:    "yes_happy_to_help",
		CreatedAt:               createdAt,
	}

	suite.Require().NoError(suite.db.Create(&response).Error)

	return response.ID
}

func TestWaitlistAPISuite(t *testing.T) {
	// Skip integration tests unless explicitly requested
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(WaitlistAPITestSuite))
}
