package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http/httptest"
	"testing"

	"reading-quiz/internal/config"
	"reading-quiz/internal/database"
	"reading-quiz/internal/dto"
	"reading-quiz/internal/grading"
	"reading-quiz/internal/handler"
	"reading-quiz/internal/middleware"
	"reading-quiz/internal/nlp/nlptest"
	"reading-quiz/internal/qg"
	"reading-quiz/internal/repository"
	"reading-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationApp wires the real services over an in-memory SQLite
// database and the deterministic museum pipeline.
func newIntegrationApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	cfg := &config.Config{
		DB: config.DBConfig{Driver: database.DriverSQLite, Path: ":memory:"},
		Generation: config.GenerationConfig{
			DefaultCount: 3, MinCount: 1, MaxCount: 12, BatchConcurrency: 1,
		},
		SamplesPath: "../../data/sample_passages.json",
	}

	db, err := database.NewSQLXDB(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = database.RunMigrations(ctx, db, cfg.DB.Driver)
	require.NoError(t, err)

	pipeline := nlptest.Museum()
	quizSvc := service.NewQuizService(
		repository.NewQuizDatabaseAdapter(db),
		qg.NewGenerator(pipeline, rand.New(rand.NewPCG(11, 13))),
		grading.NewGrader(pipeline),
		service.NewQuizCacheService(nil, cfg),
		cfg,
	)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app,
		handler.NewQuizHandler(quizSvc),
		handler.NewSampleHandler(service.NewSampleService(cfg.SamplesPath)),
		handler.NewHealthHandler(db.PingContext, nil),
	)
	return app
}

func TestAPI_GenerateSubmitReport(t *testing.T) {
	app := newIntegrationApp(t)

	status, raw := doJSON(t, app, "POST", "/api/quizzes", dto.GenerateQuizRequest{
		Title:   "A Day at the Museum",
		Passage: nlptest.MuseumPassage,
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var created dto.QuizResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotEmpty(t, created.Questions)
	assert.LessOrEqual(t, len(created.Questions), 3)

	status, raw = doJSON(t, app, "GET", "/api/quizzes/"+created.ID+"?include_answers=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	var stored dto.QuizResponse
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, created.Questions, stored.Questions)

	answers := make(map[string]string, len(stored.Questions))
	for _, q := range stored.Questions {
		assert.Contains(t, q.Evidence, q.CorrectAnswer)
		answers[q.ID] = q.CorrectAnswer
	}

	status, raw = doJSON(t, app, "POST", "/api/quizzes/"+created.ID+"/submissions", dto.SubmitAnswersRequest{
		StudentName: "Ada",
		Answers:     answers,
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var attempt dto.AttemptResponse
	require.NoError(t, json.Unmarshal(raw, &attempt))
	assert.Equal(t, float64(len(stored.Questions)), attempt.TotalScore)
	assert.Equal(t, 100.0, attempt.Percentage)
	for _, r := range attempt.Results {
		assert.Contains(t, r.Evidence, "<span class='highlight'>")
	}

	status, raw = doJSON(t, app, "GET", "/api/attempts/"+attempt.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var fetched dto.AttemptResponse
	require.NoError(t, json.Unmarshal(raw, &fetched))
	assert.Equal(t, attempt.TotalScore, fetched.TotalScore)
	assert.Equal(t, "Ada", fetched.StudentName)

	status, raw = doJSON(t, app, "GET", "/api/quizzes/"+created.ID+"/attempts", nil)
	require.Equal(t, fiber.StatusOK, status)
	var list dto.AttemptListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Attempts, 1)
	assert.Equal(t, attempt.ID, list.Attempts[0].ID)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/attempts/"+attempt.ID+"/report?format=html", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(page), "A Day at the Museum")
	assert.Contains(t, string(page), "<span class='highlight'>")

	resp, err = app.Test(httptest.NewRequest("GET", "/api/quizzes/"+created.ID+"/export?kind=answer_key", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	key, _ := io.ReadAll(resp.Body)
	for _, q := range stored.Questions {
		assert.Contains(t, string(key), q.CorrectAnswer)
	}
}

func TestAPI_EmptySubmissionScoresZero(t *testing.T) {
	app := newIntegrationApp(t)

	status, raw := doJSON(t, app, "POST", "/api/quizzes", dto.GenerateQuizRequest{Passage: nlptest.MuseumPassage, Count: 2})
	require.Equal(t, fiber.StatusCreated, status)
	var created dto.QuizResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	status, raw = doJSON(t, app, "POST", "/api/quizzes/"+created.ID+"/submissions", dto.SubmitAnswersRequest{})
	require.Equal(t, fiber.StatusCreated, status)
	var attempt dto.AttemptResponse
	require.NoError(t, json.Unmarshal(raw, &attempt))
	assert.Equal(t, 0.0, attempt.TotalScore)
	assert.Equal(t, float64(len(created.Questions)), attempt.MaxScore)
	for _, r := range attempt.Results {
		assert.False(t, r.Grade.IsCorrect)
		assert.Empty(t, r.UserAnswer)
	}
}

func TestAPI_UnknownQuizAndSamples(t *testing.T) {
	app := newIntegrationApp(t)

	status, _ := doJSON(t, app, "GET", "/api/quizzes/"+quizID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doJSON(t, app, "POST", "/api/quizzes/"+quizID+"/submissions", dto.SubmitAnswersRequest{})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw := doJSON(t, app, "GET", "/api/samples", nil)
	require.Equal(t, fiber.StatusOK, status)
	var samples []dto.SampleResponse
	require.NoError(t, json.Unmarshal(raw, &samples))
	assert.Len(t, samples, 4)

	status, _ = doJSON(t, app, "GET", "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
}
