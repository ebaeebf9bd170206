package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type AnalyzerService interface {
	AnalyzeBatch(ctx context.Context, userID, jobDescription string, files []*multipart.FileHeader) models.BatchResult
}

type analyzerService struct {
	validator   DocumentValidator
	storage     StorageService
	extractor   TextExtractor
	prompts     *PromptBuilder
	gemini      GeminiService
	repo        repositories.AnalysisRepository
	concurrency int
}

func NewAnalyzerService(
	validator DocumentValidator,
	storage StorageService,
	extractor TextExtractor,
	gemini GeminiService,
	repo repositories.AnalysisRepository,
	concurrency int,
) AnalyzerService {
	if concurrency < 1 {
		concurrency = 1
	}

	return &analyzerService{
		validator:   validator,
		storage:     storage,
		extractor:   extractor,
		prompts:     NewPromptBuilder(),
		gemini:      gemini,
		repo:        repo,
		concurrency: concurrency,
	}
}

type documentOutcome struct {
	result  *models.AnalysisResult
	failure *models.AnalysisFailure
}

// AnalyzeBatch implements AnalyzerService. Every submitted file with a
// non-empty filename receives exactly one outcome: a failure at any stage is
// recorded for that file alone and never aborts the rest of the batch.
func (a *analyzerService) AnalyzeBatch(ctx context.Context, userID, jobDescription string, files []*multipart.FileHeader) models.BatchResult {
	type job struct {
		index int
		file  *multipart.FileHeader
	}

	var accepted []job
	for _, file := range files {
		if file.Filename == "" {
			continue
		}
		accepted = append(accepted, job{index: len(accepted), file: file})
	}

	outcomes := make([]documentOutcome, len(accepted))

	jobs := make(chan job)
	var wg sync.WaitGroup

	workers := a.concurrency
	if workers > len(accepted) {
		workers = len(accepted)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// outcomes are keyed by submission index so completion order
				// never leaks into the assembled batch
				outcomes[j.index] = a.processDocument(ctx, userID, jobDescription, j.file)
			}
		}()
	}

	for _, j := range accepted {
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	var result models.BatchResult
	for _, outcome := range outcomes {
		if outcome.result != nil {
			result.Results = append(result.Results, *outcome.result)
		} else if outcome.failure != nil {
			result.Errors = append(result.Errors, *outcome.failure)
		}
	}

	// Ranking depends only on scores, never on completion order. The sort is
	// stable so tied scores keep their submission order.
	sort.SliceStable(result.Results, func(i, j int) bool {
		return result.Results[i].Score > result.Results[j].Score
	})

	return result
}

func (a *analyzerService) processDocument(ctx context.Context, userID, jobDescription string, file *multipart.FileHeader) documentOutcome {
	fail := func(reason string) documentOutcome {
		return documentOutcome{
			failure: &models.AnalysisFailure{Filename: file.Filename, Error: reason},
		}
	}

	if err := ctx.Err(); err != nil {
		return fail("analysis cancelled")
	}

	format, err := a.validator.Validate(file.Filename)
	if err != nil {
		return fail(err.Error())
	}

	storedName, filePath, err := a.storage.SaveFile(file, userID)
	if err != nil {
		log.Printf("⚠️  Failed to store %s: %v\n", file.Filename, err)
		return fail("failed to store uploaded file")
	}

	resumeText := a.extractor.Extract(format, filePath)
	if strings.TrimSpace(resumeText) == "" {
		a.storage.DeleteFile(storedName)
		return fail("could not extract text from document")
	}

	prompt := a.prompts.Build(resumeText, jobDescription)

	analysis, err := a.gemini.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		a.storage.DeleteFile(storedName)
		if errors.Is(err, ErrNotConfigured) {
			return fail(notConfiguredMessage)
		}
		return fail("Analysis error: " + err.Error())
	}

	score := ExtractScore(analysis)

	// Durability is best-effort: the computed result is still returned to the
	// caller even when the write fails.
	storedJobDescription := jobDescription
	if strings.TrimSpace(storedJobDescription) == "" {
		storedJobDescription = models.JobDescriptionNone
	}

	record := &models.Resume{
		ID:               uuid.New(),
		UserID:           userID,
		Filename:         storedName,
		OriginalFileName: file.Filename,
		AnalysisResult:   analysis,
		Score:            score,
		JobDescription:   storedJobDescription,
		UploadedAt:       time.Now(),
	}

	if err := a.repo.Create(record); err != nil {
		log.Printf("⚠️  Failed to persist analysis for %s: %v\n", file.Filename, err)
	}

	return documentOutcome{
		result: &models.AnalysisResult{
			Filename: file.Filename,
			Score:    score,
			Analysis: analysis,
		},
	}
}
