// Package web serves the interactive performance form and its JSON API.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eytandecker/at502-perf/internal/chart"
	"github.com/eytandecker/at502-perf/internal/form"
	"github.com/eytandecker/at502-perf/internal/logger"
	"github.com/eytandecker/at502-perf/internal/performance"
	"github.com/eytandecker/at502-perf/internal/store"
	"github.com/eytandecker/at502-perf/pkg/types"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Estimator is the subset of performance.Estimator used by the server.
type Estimator interface {
	Estimate(in types.PerformanceInputs) types.PerformanceOutputs
}

// RunwayRepository is the subset of store.RunwayStore used by the server.
type RunwayRepository interface {
	LoadAll() map[string]string
	Get(itemID string) (string, bool)
	Set(itemID, condition string) error
}

// FeedbackRecorder is the subset of store.FeedbackStore used by the server.
type FeedbackRecorder interface {
	Submit(rating int, comment string) (store.Feedback, error)
	AverageRating() (float64, int)
}

// Recorder receives request and calculation metrics. Implemented by metrics.PromSink.
type Recorder interface {
	RecordCalculation(surface string)
	RecordRequest(route string, code int, d time.Duration)
}

// Deps bundles the collaborators behind the HTTP surface.
type Deps struct {
	Estimator Estimator
	Runways   RunwayRepository
	Feedback  FeedbackRecorder
	Metrics   Recorder
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer        prometheus.Gatherer
	Logger          logger.Logger
	ProfilePoints   int
	ProfileMaxAltFt float64
}

type server struct {
	deps Deps
}

// New constructs the HTTP router wired to the estimator and stores.
func New(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = logger.NopLogger{}
	}
	if deps.ProfilePoints == 0 {
		deps.ProfilePoints = performance.DefaultProfilePoints
	}
	if deps.ProfileMaxAltFt == 0 {
		deps.ProfileMaxAltFt = performance.DefaultProfileMaxAltFt
	}
	s := &server{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.metricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/", s.handleForm)
	r.Post("/calculate", s.handleCalculate)
	r.Post("/feedback", s.handleFeedbackForm)
	r.Get("/chart.{format}", s.handleChart)

	r.Route("/api", func(r chi.Router) {
		r.Post("/estimate", s.handleEstimate)
		r.Get("/conditions", s.handleConditions)
		r.Get("/runway", s.handleListRunways)
		r.Get("/runway/{itemID}", s.handleGetRunway)
		r.Put("/runway/{itemID}", s.handlePutRunway)
		r.Post("/feedback", s.handleFeedback)
	})
	return r
}

func (s *server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if s.deps.Metrics == nil {
			return
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.deps.Metrics.RecordRequest(route, status, time.Since(start))
	})
}

func (s *server) estimate(in types.PerformanceInputs) types.PerformanceOutputs {
	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordCalculation(in.RunwayCondition)
	}
	return s.deps.Estimator.Estimate(in)
}

// ---- HTML form ----

type fieldView struct {
	form.Field
	Value float64
}

type conditionView struct {
	performance.RunwayCondition
	Selected bool
}

type pageView struct {
	Fields        []fieldView
	Conditions    []conditionView
	ItemID        string
	Error         string
	Results       []performance.ResultLine
	ChartURL      string
	Thanks        bool
	Ratings       []int
	AverageRating float64
	RatingCount   int
}

func (s *server) page(in types.PerformanceInputs, itemID string) pageView {
	v := pageView{ItemID: itemID, Ratings: []int{5, 4, 3, 2, 1}}
	values := map[string]float64{
		form.PressureAltitude: in.PressureAltitudeFt,
		form.OAT:              in.OATCelsius,
		form.GrossWeight:      in.GrossWeightLbs,
		form.Headwind:         in.HeadwindKts,
		form.Fuel:             in.FuelGal,
		form.Hopper:           in.HopperGal,
		form.PilotWeight:      in.PilotWeightLbs,
		form.GlideHeight:      in.GlideHeightFt,
	}
	for _, f := range form.Fields() {
		v.Fields = append(v.Fields, fieldView{Field: f, Value: values[f.Name]})
	}
	for _, rc := range performance.RunwayConditions() {
		v.Conditions = append(v.Conditions, conditionView{RunwayCondition: rc, Selected: rc.Label == in.RunwayCondition})
	}
	if s.deps.Feedback != nil {
		v.AverageRating, v.RatingCount = s.deps.Feedback.AverageRating()
	}
	return v
}

func (s *server) render(w http.ResponseWriter, status int, v pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, v); err != nil {
		s.deps.Logger.Errorf("render page: %v", err)
	}
}

func (s *server) handleForm(w http.ResponseWriter, r *http.Request) {
	in := form.Defaults()
	itemID := strings.TrimSpace(r.URL.Query().Get("item_id"))
	if itemID != "" {
		if cond, ok := s.deps.Runways.Get(itemID); ok {
			in.RunwayCondition = cond
		}
	}
	v := s.page(in, itemID)
	v.Thanks = r.URL.Query().Get("thanks") != ""
	s.render(w, http.StatusOK, v)
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	itemID := strings.TrimSpace(r.PostForm.Get("item_id"))
	in, err := form.Parse(r.PostForm)
	if err != nil {
		v := s.page(in, itemID)
		v.Error = err.Error()
		s.render(w, http.StatusUnprocessableEntity, v)
		return
	}

	if itemID != "" {
		if err := s.deps.Runways.Set(itemID, in.RunwayCondition); err != nil && !errors.Is(err, store.ErrUnknownCondition) {
			s.deps.Logger.Warnf("save runway condition for %q: %v", itemID, err)
		}
	}

	out := s.estimate(in)
	v := s.page(in, itemID)
	v.Results = performance.Report(out)
	v.ChartURL = chartURL(in.OATCelsius, in.GrossWeightLbs)
	s.render(w, http.StatusOK, v)
}

func chartURL(oatC, weightLbs float64) string {
	q := url.Values{}
	q.Set("oat", strconv.FormatFloat(oatC, 'f', -1, 64))
	q.Set("weight", strconv.FormatFloat(weightLbs, 'f', -1, 64))
	return "/chart.svg?" + q.Encode()
}

func (s *server) handleFeedbackForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rating, err := strconv.Atoi(r.PostForm.Get("rating"))
	if err == nil {
		_, err = s.deps.Feedback.Submit(rating, r.PostForm.Get("comment"))
	}
	if err != nil {
		var numErr *strconv.NumError
		if !errors.Is(err, store.ErrInvalidRating) && !errors.As(err, &numErr) {
			s.deps.Logger.Errorf("record feedback: %v", err)
			http.Error(w, "feedback not recorded", http.StatusInternalServerError)
			return
		}
		v := s.page(form.Defaults(), "")
		v.Error = "feedback not recorded: rating must be 1 to 5"
		s.render(w, http.StatusUnprocessableEntity, v)
		return
	}
	http.Redirect(w, r, "/?thanks=1", http.StatusSeeOther)
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	in := form.Defaults()
	q := r.URL.Query()
	for key, dst := range map[string]*float64{"oat": &in.OATCelsius, "weight": &in.GrossWeightLbs} {
		if raw := q.Get(key); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				http.Error(w, "invalid "+key, http.StatusBadRequest)
				return
			}
			*dst = v
		}
	}
	if err := form.Validate(in); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	profile := performance.ClimbProfile(in.OATCelsius, in.GrossWeightLbs, s.deps.ProfilePoints, s.deps.ProfileMaxAltFt)
	w.Header().Set("Content-Type", chart.ContentType(format))
	if err := chart.Render(w, format, profile, in.OATCelsius, in.GrossWeightLbs, chart.DefaultOptions()); err != nil {
		if errors.Is(err, chart.ErrUnsupportedFormat) {
			w.Header().Del("Content-Type")
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.deps.Logger.Errorf("render chart: %v", err)
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
	}
}

// ---- JSON API ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	in := form.Defaults()
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := form.Validate(in); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	out := s.estimate(in)
	writeJSON(w, http.StatusOK, map[string]any{
		"inputs":  in,
		"outputs": out,
		"report":  performance.Report(out),
	})
}

func (s *server) handleConditions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"conditions":     performance.RunwayConditions(),
		"unknown_factor": performance.UnknownConditionFactor,
	})
}

func (s *server) handleListRunways(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Runways.LoadAll())
}

func (s *server) handleGetRunway(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	cond, ok := s.deps.Runways.Get(itemID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"item_id": itemID, "found": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"item_id":   itemID,
		"condition": cond,
		"factor":    performance.RunwayFactor(cond),
		"found":     true,
	})
}

func (s *server) handlePutRunway(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	var req struct {
		Condition string `json:"condition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.deps.Runways.Set(itemID, req.Condition); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrUnknownCondition) || errors.Is(err, store.ErrEmptyItemID) {
			status = http.StatusUnprocessableEntity
		} else {
			s.deps.Logger.Errorf("save runway condition: %v", err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"item_id":   itemID,
		"condition": req.Condition,
		"factor":    performance.RunwayFactor(req.Condition),
		"found":     true,
	})
}

func (s *server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	fb, err := s.deps.Feedback.Submit(req.Rating, req.Comment)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrInvalidRating) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}
