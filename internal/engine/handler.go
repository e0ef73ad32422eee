package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/strengthlab/trainadapt/internal/catalog"
	"github.com/strengthlab/trainadapt/internal/middleware"
	"github.com/strengthlab/trainadapt/internal/telemetry/metrics"
	"github.com/strengthlab/trainadapt/internal/telemetry/tracing"
	"github.com/strengthlab/trainadapt/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=engine_test

type samplesRepo interface {
	Add(ctx context.Context, userID string, sample PerformanceSample) (int, error)
	ListForUser(ctx context.Context, userID string) ([]PerformanceSample, error)
}

type contextsRepo interface {
	Upsert(ctx context.Context, userCtx UserTrainingContext) error
	Get(ctx context.Context, userID string) (*UserTrainingContext, error)
}

type resultsCache interface {
	Get(ctx context.Context, userID string) (*AnalysisResult, error)
	Set(ctx context.Context, userID string, result AnalysisResult) error
	Invalidate(ctx context.Context, userID string) error
}

const (
	substitutionCacheExpire = 60 * 60 // seconds
	substitutionCacheSizeMB = 10
)

type AnalyzeRequest struct {
	UserContext UserTrainingContext `json:"userContext"`
	// History is optional; when empty, the stored samples are used.
	History   []PerformanceSample `json:"history,omitempty"`
	Program   Program             `json:"program"`
	SkipCache bool                `json:"skipCache,omitempty"`
}

type SubstitutionsRequest struct {
	UserContext UserTrainingContext `json:"userContext"`
}

type SubstitutionsResponse struct {
	ExerciseID    string         `json:"exerciseId"`
	Substitutions []Substitution `json:"substitutions"`
}

type InjuryRiskRequest struct {
	UserContext UserTrainingContext `json:"userContext"`
	Workout     PlannedWorkout      `json:"workout"`
	Recent      []LoadRecord        `json:"recent"`
}

type AddSampleResponse struct {
	ID int `json:"id"`
}

type HistoryRequest struct {
	History []PerformanceSample `json:"history"`
}

type FatigueRequest struct {
	Exercises []ProgramExercise `json:"exercises"`
}

type Handler struct {
	engine         *Engine
	samples        samplesRepo
	contexts       contextsRepo
	results        resultsCache
	metricsManager *metrics.Manager
	subsCache      *freecache.Cache
}

func NewHandler(
	engine *Engine,
	samples samplesRepo,
	contexts contextsRepo,
	results resultsCache,
	metricsManager *metrics.Manager,
) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		engine:         engine,
		samples:        samples,
		contexts:       contexts,
		results:        results,
		metricsManager: metricsManager,
		subsCache:      freecache.NewCache(substitutionCacheSizeMB * megabyte),
	}
}

func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	analyzeAllowedPerMin int,
) {
	// rate limit the expensive full analysis endpoint
	analyzeSubrouter := r.PathPrefix("/analyze").Subrouter()
	analyzeSubrouter.HandleFunc("", handler.HandleAnalyze).Methods("POST", "OPTIONS").Name("analyze")
	analyzeSubrouter.Use(middleware.RateLimit(rateLimiter, "analyze", analyzeAllowedPerMin, handler.metricsManager))

	r.HandleFunc("/analysis/plateau", handler.HandlePlateau).Methods("POST", "OPTIONS").Name("plateau")
	r.HandleFunc("/analysis/overreaching", handler.HandleOverreaching).Methods("POST", "OPTIONS").Name("overreaching")
	r.HandleFunc("/analysis/volume", handler.HandleVolume).Methods("POST", "OPTIONS").Name("volume")
	r.HandleFunc("/analysis/fatigue", handler.HandleFatigue).Methods("POST", "OPTIONS").Name("fatigue")
	r.HandleFunc("/analysis/injuryrisk", handler.HandleInjuryRisk).Methods("POST", "OPTIONS").Name("injuryrisk")

	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", handler.HandleGetExercise).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}/substitutions", handler.HandleSubstitutions).Methods("POST", "OPTIONS").Name("substitutions")

	r.HandleFunc("/users/{id}/context", handler.HandleUpsertContext).Methods("PUT", "OPTIONS").Name("upsert-context")
	r.HandleFunc("/users/{id}/context", handler.HandleGetContext).Methods("GET", "OPTIONS").Name("get-context")
	r.HandleFunc("/users/{id}/samples", handler.HandleAddSample).Methods("POST", "OPTIONS").Name("new-sample")
	r.HandleFunc("/users/{id}/samples", handler.HandleListSamples).Methods("GET", "OPTIONS").Name("list-samples")
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyze")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("analyze, unmarshal json params: %s", err)
		http.Error(w, "analyze failed", http.StatusBadRequest)
		return
	}
	if req.UserContext.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if !req.SkipCache && len(req.History) == 0 {
		if cached, err := handler.results.Get(ctx, req.UserContext.UserID); err == nil {
			handler.metricsManager.CounterCacheHits.Inc()
			handler.writeJSON(w, cached, http.StatusOK)
			return
		}
		handler.metricsManager.CounterCacheMisses.Inc()
	}

	history := req.History
	if len(history) == 0 {
		var err error
		history, err = handler.samples.ListForUser(ctx, req.UserContext.UserID)
		if err != nil {
			log.Errorf("analyze, list samples for user %s: %s", req.UserContext.UserID, err)
			http.Error(w, "error, failed to load performance history", http.StatusInternalServerError)
			return
		}
	}

	startedAt := time.Now()
	result, err := handler.engine.Analyze(ctx, req.UserContext, history, req.Program)
	if err != nil {
		log.Errorf("analyze for user %s: %s", req.UserContext.UserID, err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.HistAnalysisDuration.Observe(time.Since(startedAt).Seconds())
	handler.metricsManager.CounterAnalyses.Inc()
	for _, rec := range result.Recommendations {
		handler.metricsManager.CounterRecommendations.With(
			prometheus.Labels{"type": string(rec.Type)},
		).Inc()
	}

	if len(req.History) == 0 {
		if err := handler.results.Set(ctx, req.UserContext.UserID, result); err != nil {
			log.Errorf("analyze, cache result for user %s: %s", req.UserContext.UserID, err)
		}
	}

	log.Debugf(
		"analysis done for user %s: %d samples, %d recommendations",
		req.UserContext.UserID, len(history), len(result.Recommendations),
	)
	handler.writeJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandlePlateau(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plateau")
	defer span.End()

	history, ok := handler.decodeHistory(w, r)
	if !ok {
		return
	}
	handler.writeJSON(w, handler.engine.DetectPlateau(ctx, history), http.StatusOK)
}

func (handler *Handler) HandleOverreaching(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.overreaching")
	defer span.End()

	history, ok := handler.decodeHistory(w, r)
	if !ok {
		return
	}
	handler.writeJSON(w, handler.engine.AssessOverreaching(ctx, history), http.StatusOK)
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume")
	defer span.End()

	history, ok := handler.decodeHistory(w, r)
	if !ok {
		return
	}
	handler.writeJSON(w, handler.engine.OptimizeVolume(ctx, history), http.StatusOK)
}

func (handler *Handler) HandleFatigue(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fatigue")
	defer span.End()

	var req FatigueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("fatigue, unmarshal json params: %s", err)
		http.Error(w, "fatigue analysis failed", http.StatusBadRequest)
		return
	}
	handler.writeJSON(w, handler.engine.AnalyzeFatigue(ctx, req.Exercises), http.StatusOK)
}

func (handler *Handler) HandleInjuryRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.injuryRisk")
	defer span.End()

	var req InjuryRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("injury risk, unmarshal json params: %s", err)
		http.Error(w, "injury risk prediction failed", http.StatusBadRequest)
		return
	}
	handler.writeJSON(w, handler.engine.PredictInjuryRisk(ctx, req.UserContext, req.Workout, req.Recent), http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.listExercises")
	defer span.End()

	handler.writeJSON(w, handler.engine.Catalog().All(), http.StatusOK)
}

func (handler *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.getExercise")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	profile, ok := handler.engine.Catalog().Get(exerciseID)
	if !ok {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	handler.writeJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleSubstitutions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.substitutions")
	defer span.End()

	exerciseID := mux.Vars(r)["id"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	var req SubstitutionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("substitutions, unmarshal json params: %s", err)
		http.Error(w, "substitution search failed", http.StatusBadRequest)
		return
	}

	handler.metricsManager.CounterSubstitutionLookups.Inc()

	cacheKey, keyOK := substitutionsCacheKey(exerciseID, req.UserContext)
	if keyOK {
		if respBytes, err := handler.subsCache.Get(cacheKey); err == nil {
			log.Tracef("substitutions for %s served from cache", exerciseID)
			pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
			return
		}
	}

	substitutions, err := handler.engine.FindSubstitutions(ctx, exerciseID, req.UserContext)
	if err != nil {
		if errors.Is(err, ErrUnknownExercise) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("find substitutions for %s: %s", exerciseID, err)
		http.Error(w, "substitution search failed", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(SubstitutionsResponse{
		ExerciseID:    exerciseID,
		Substitutions: substitutions,
	})
	if err != nil {
		log.Errorf("marshal substitutions response: %s", err)
		http.Error(w, "substitution search failed", http.StatusInternalServerError)
		return
	}

	if keyOK {
		if err := handler.subsCache.Set(cacheKey, respBytes, substitutionCacheExpire); err != nil {
			log.Errorf("cache substitutions for %s: %s", exerciseID, err)
		}
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleUpsertContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.upsertContext")
	defer span.End()

	userID := mux.Vars(r)["id"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var userCtx UserTrainingContext
	if err := json.NewDecoder(r.Body).Decode(&userCtx); err != nil {
		log.Errorf("upsert context, unmarshal json params: %s", err)
		http.Error(w, "save context failed", http.StatusBadRequest)
		return
	}
	userCtx.UserID = userID

	if err := handler.contexts.Upsert(ctx, userCtx); err != nil {
		log.Errorf("upsert context for user %s: %s", userID, err)
		http.Error(w, "save context failed", http.StatusInternalServerError)
		return
	}

	if err := handler.results.Invalidate(ctx, userID); err != nil {
		log.Errorf("invalidate analysis cache for user %s: %s", userID, err)
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "saved", http.StatusCreated)
}

func (handler *Handler) HandleGetContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.getContext")
	defer span.End()

	userID := mux.Vars(r)["id"]
	userCtx, err := handler.contexts.Get(ctx, userID)
	if err != nil {
		log.Errorf("get context for user %s: %s", userID, err)
		http.Error(w, "context not found", http.StatusNotFound)
		return
	}
	handler.writeJSON(w, userCtx, http.StatusOK)
}

func (handler *Handler) HandleAddSample(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.addSample")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["id"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var sample PerformanceSample
	if err := json.NewDecoder(r.Body).Decode(&sample); err != nil {
		log.Errorf("add sample, unmarshal json params: %s", err)
		http.Error(w, "add sample failed", http.StatusBadRequest)
		return
	}
	if sample.Timestamp.IsZero() {
		http.Error(w, "error, sample timestamp empty", http.StatusBadRequest)
		return
	}

	id, err := handler.samples.Add(ctx, userID, sample)
	if err != nil {
		log.Errorf("add sample for user %s: %s", userID, err)
		http.Error(w, "add sample failed", http.StatusInternalServerError)
		return
	}

	// a new sample changes the analysis outcome
	if err := handler.results.Invalidate(ctx, userID); err != nil {
		log.Errorf("invalidate analysis cache for user %s: %s", userID, err)
	}

	log.Debugf("new sample added for user %s: %d", userID, id)
	handler.writeJSON(w, AddSampleResponse{ID: id}, http.StatusCreated)
}

func (handler *Handler) HandleListSamples(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.listSamples")
	defer span.End()

	userID := mux.Vars(r)["id"]
	samples, err := handler.samples.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list samples for user %s: %s", userID, err)
		http.Error(w, "error, failed to list samples", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, samples, http.StatusOK)
}

func (handler *Handler) decodeHistory(w http.ResponseWriter, r *http.Request) ([]PerformanceSample, bool) {
	var req HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("unmarshal history json params: %s", err)
		http.Error(w, "invalid history payload", http.StatusBadRequest)
		return nil, false
	}
	return req.History, true
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any, statusCode int) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadBytes, statusCode)
}

// substitutionsCacheKey builds a stable in-process cache key from the
// exercise and the context fields the search depends on.
func substitutionsCacheKey(exerciseID string, userCtx UserTrainingContext) ([]byte, bool) {
	// json.Marshal sorts map keys, so the key is stable per context
	ctxBytes, err := json.Marshal(struct {
		Equipment     map[catalog.Equipment]bool `json:"equipment"`
		InjuryHistory []catalog.InjuryTag        `json:"injuryHistory"`
	}{
		Equipment:     userCtx.AvailableEquipment,
		InjuryHistory: userCtx.InjuryHistory,
	})
	if err != nil {
		return nil, false
	}
	return []byte(fmt.Sprintf("subs::%s::%s", exerciseID, ctxBytes)), true
}
