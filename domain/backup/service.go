package backup

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/arrahmanlabs/waitlist-api/pkg/constants"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
)

// snapshotRetention is how many snapshot files are kept in the backup
// directory; older ones are pruned after each run.
const snapshotRetention = 10

const snapshotFilePrefix = "waitlist_backup_"

// ResponseLister is the slice of the waitlist repository the exporter reads
// from. Rows arrive newest first.
type ResponseLister interface {
	GetAllResponses(ctx context.Context) ([]*models.WaitlistResponse, error)
}

type BackupService interface {
	// WriteCSV streams every response as RFC 4180 CSV, header row first,
	// newest response first. Returns the number of data rows written.
	WriteCSV(ctx context.Context, w io.Writer) (int, error)

	// CreateSnapshot writes a timestamped SQL snapshot of the response table
	// into the backup directory and prunes old snapshots. Returns the file
	// name of the new snapshot.
	CreateSnapshot(ctx context.Context) (string, error)
}

type backupService struct {
	logger    *log.Logger
	responses ResponseLister
	backupDir string
}

func NewBackupService(logger *log.Logger, responses ResponseLister, backupDir string) BackupService {
	if backupDir == "" {
		backupDir = "backups"
	}

	return &backupService{
		logger:    logger,
		responses: responses,
		backupDir: backupDir,
	}
}

var csvHeader = []string{
	"id",
	"fullName",
	"email",
	"role",
	"age",
	"prayerFrequency",
	"arabicUnderstanding",
	"understandingDifficulty",
	"importance",
	"learningStruggle",
	"currentApproach",
	"arExperience",
	"arInterest",
	"features",
	"likelihood",
	"additionalFeedback",
	"interviewWillingness",
	"investorPresentation",
	"additionalComments",
	"createdAt",
}

func (s *backupService) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	responses, err := s.responses.GetAllResponses(ctx)
	if err != nil {
		logger.Error("Failed to load responses for CSV export", "error", err)
		return 0, err
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return 0, apperrors.NewInternalServerError("unable to write CSV header", err)
	}

	for i, response := range responses {
		if err := writer.Write(csvRecord(response)); err != nil {
			return i, apperrors.NewInternalServerError("unable to write CSV row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return len(responses), apperrors.NewInternalServerError("unable to flush CSV output", err)
	}

	return len(responses), nil
}

func csvRecord(response *models.WaitlistResponse) []string {
	return []string{
		strconv.FormatUint(uint64(response.ID), 10),
		response.FullName,
		response.Email,
		response.Role,
		response.Age,
		response.PrayerFrequency,
		response.ArabicUnderstanding,
		response.UnderstandingDifficulty,
		response.Importance,
		response.LearningStruggle,
		response.CurrentApproach,
		response.ARExperience,
		response.ARInterest,
		strings.Join(response.Features, ";"),
		response.Likelihood,
		response.AdditionalFeedback,
		response.InterviewWillingness,
		response.InvestorPresentation,
		response.AdditionalComments,
		response.CreatedAt.UTC().Format(constants.RFC3339DateTimeFormat),
	}
}

func (s *backupService) CreateSnapshot(ctx context.Context) (string, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	responses, err := s.responses.GetAllResponses(ctx)
	if err != nil {
		logger.Error("Failed to load responses for snapshot", "error", err)
		return "", err
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", apperrors.NewInternalServerError("unable to create backup directory", err)
	}

	fileName := snapshotFilePrefix + time.Now().UTC().Format("20060102_150405") + ".sql"
	path := filepath.Join(s.backupDir, fileName)

	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewInternalServerError("unable to create snapshot file", err)
	}
	defer file.Close()

	if err := writeSnapshotSQL(file, responses); err != nil {
		return "", apperrors.NewInternalServerError("unable to write snapshot", err)
	}

	if err := s.pruneSnapshots(logger); err != nil {
		logger.Warn("Failed to prune old snapshots", "error", err)
	}

	logger.Info("Snapshot created", "file", fileName, "rows", len(responses))
	return fileName, nil
}

func writeSnapshotSQL(w io.Writer, responses []*models.WaitlistResponse) error {
	if _, err := fmt.Fprintf(w, "-- waitlist_responses snapshot, %d rows, generated %s\n",
		len(responses), time.Now().UTC().Format(constants.RFC3339DateTimeFormat)); err != nil {
		return err
	}

	for _, response := range responses {
		features, err := models.FeatureList(response.Features).Value()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w,
			"INSERT INTO waitlist_responses (id, full_name, email, role, age, prayer_frequency, arabic_understanding, understanding_difficulty, importance, learning_struggle, current_approach, ar_experience, ar_interest, features, likelihood, additional_feedback, interview_willingness, investor_presentation, additional_comments, created_at) VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s);\n",
			response.ID,
			quoteSQL(response.FullName),
			quoteSQL(response.Email),
			quoteSQL(response.Role),
			quoteSQL(response.Age),
			quoteSQL(response.PrayerFrequency),
			quoteSQL(response.ArabicUnderstanding),
			quoteSQL(response.UnderstandingDifficulty),
			quoteSQL(response.Importance),
			quoteSQL(response.LearningStruggle),
			quoteSQL(response.CurrentApproach),
			quoteSQL(response.ARExperience),
			quoteSQL(response.ARInterest),
			quoteSQL(string(features.([]byte))),
			quoteSQL(response.Likelihood),
			quoteSQL(response.AdditionalFeedback),
			quoteSQL(response.InterviewWillingness),
			quoteSQL(response.InvestorPresentation),
			quoteSQL(response.AdditionalComments),
			quoteSQL(response.CreatedAt.UTC().Format(constants.RFC3339DateTimeFormat)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// quoteSQL renders a standard SQL string literal, doubling embedded quotes.
func quoteSQL(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func (s *backupService) pruneSnapshots(logger *log.Logger) error {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return err
	}

	var snapshots []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, snapshotFilePrefix) && strings.HasSuffix(name, ".sql") {
			snapshots = append(snapshots, name)
		}
	}

	if len(snapshots) <= snapshotRetention {
		return nil
	}

	// Timestamped names sort chronologically, oldest first.
	sort.Strings(snapshots)

	for _, name := range snapshots[:len(snapshots)-snapshotRetention] {
		if err := os.Remove(filepath.Join(s.backupDir, name)); err != nil {
			return err
		}
		logger.Info("Pruned old snapshot", "file", name)
	}

	return nil
}
