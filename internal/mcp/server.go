package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eytandecker/at502-perf/internal/form"
	"github.com/eytandecker/at502-perf/internal/logger"
	"github.com/eytandecker/at502-perf/internal/performance"
	"github.com/eytandecker/at502-perf/internal/store"
	"github.com/eytandecker/at502-perf/pkg/types"
)

// Estimator is the subset of performance.Estimator used by the MCP server.
type Estimator interface {
	Estimate(in types.PerformanceInputs) types.PerformanceOutputs
}

// RunwayRepository is the subset of store.RunwayStore used by the MCP server.
type RunwayRepository interface {
	Get(itemID string) (string, bool)
	Set(itemID, condition string) error
}

// FeedbackRecorder is the subset of store.FeedbackStore used by the MCP server.
type FeedbackRecorder interface {
	Submit(rating int, comment string) (store.Feedback, error)
}

// Deps bundles the collaborators behind the tools.
type Deps struct {
	Estimator Estimator
	Runways   RunwayRepository
	Feedback  FeedbackRecorder
	Logger    logger.Logger
	// ProfilePoints and ProfileMaxAltFt size the climb_profile samples.
	ProfilePoints   int
	ProfileMaxAltFt float64
}

// Server wraps the MCP SDK server and exposes the estimator as tools.
type Server struct {
	sdk  *mcpsdk.Server
	deps Deps
}

// NewServer creates a Server and registers its tools.
func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = logger.NopLogger{}
	}
	if deps.ProfilePoints == 0 {
		deps.ProfilePoints = performance.DefaultProfilePoints
	}
	if deps.ProfileMaxAltFt == 0 {
		deps.ProfileMaxAltFt = performance.DefaultProfileMaxAltFt
	}
	s := &Server{
		sdk: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    "at502-perf",
			Version: "1.0.0",
		}, nil),
		deps: deps,
	}

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "estimate_performance",
		Description: "Estimates AT-502B takeoff, landing, climb, stall, glide and weight-and-balance figures. Omitted inputs take the form defaults.",
	}, s.handleEstimate)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "climb_profile",
		Description: "Returns climb rate sampled over pressure altitude for an OAT and gross weight.",
	}, s.handleClimbProfile)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "list_runway_conditions",
		Description: "Lists the runway surface conditions and their distance multipliers.",
	}, s.handleListConditions)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "get_runway_condition",
		Description: "Returns the runway condition previously saved for an item.",
	}, s.handleGetCondition)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "save_runway_condition",
		Description: "Saves the runway condition chosen for an item.",
	}, s.handleSaveCondition)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "submit_feedback",
		Description: "Records a 1-5 star rating with an optional comment.",
	}, s.handleSubmitFeedback)
	return s
}

// Run starts the MCP server over stdio and blocks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.sdk.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect connects the server to an existing transport (used in tests).
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.sdk.Connect(ctx, t, nil)
}

// estimateInput holds arguments for the estimate_performance tool.
type estimateInput struct {
	PressureAltitudeFt *float64 `json:"pressure_altitude_ft,omitempty" jsonschema:"pressure altitude in feet"`
	OATCelsius         *float64 `json:"oat_c,omitempty" jsonschema:"outside air temperature in degrees Celsius"`
	GrossWeightLbs     *float64 `json:"gross_weight_lbs,omitempty" jsonschema:"gross weight in pounds"`
	HeadwindKts        *float64 `json:"headwind_kts,omitempty" jsonschema:"headwind component in knots, negative for tailwind"`
	RunwayCondition    string   `json:"runway_condition,omitempty" jsonschema:"runway surface condition label"`
	FuelGal            *float64 `json:"fuel_gal,omitempty" jsonschema:"fuel load in gallons"`
	HopperGal          *float64 `json:"hopper_gal,omitempty" jsonschema:"hopper load in gallons"`
	PilotWeightLbs     *float64 `json:"pilot_weight_lbs,omitempty" jsonschema:"pilot weight in pounds"`
	GlideHeightFt      *float64 `json:"glide_height_ft,omitempty" jsonschema:"height above ground for the glide estimate in feet"`
}

func (i estimateInput) inputs() types.PerformanceInputs {
	in := form.Defaults()
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&in.PressureAltitudeFt, i.PressureAltitudeFt)
	set(&in.OATCelsius, i.OATCelsius)
	set(&in.GrossWeightLbs, i.GrossWeightLbs)
	set(&in.HeadwindKts, i.HeadwindKts)
	set(&in.FuelGal, i.FuelGal)
	set(&in.HopperGal, i.HopperGal)
	set(&in.PilotWeightLbs, i.PilotWeightLbs)
	set(&in.GlideHeightFt, i.GlideHeightFt)
	if i.RunwayCondition != "" {
		in.RunwayCondition = i.RunwayCondition
	}
	return in
}

// EstimateResponse is the JSON payload returned by estimate_performance.
type EstimateResponse struct {
	Inputs    types.PerformanceInputs  `json:"inputs"`
	Outputs   types.PerformanceOutputs `json:"outputs"`
	Report    []performance.ResultLine `json:"report"`
	Timestamp string                   `json:"timestamp"`
}

func (s *Server) handleEstimate(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input estimateInput,
) (*mcpsdk.CallToolResult, any, error) {
	in := input.inputs()
	if err := form.Validate(in); err != nil {
		return s.errorResult(err), nil, nil
	}
	out := s.deps.Estimator.Estimate(in)
	s.deps.Logger.Debugw("estimate", map[string]any{"surface": in.RunwayCondition, "weight": in.GrossWeightLbs})
	return textResult(EstimateResponse{
		Inputs:    in,
		Outputs:   out,
		Report:    performance.Report(out),
		Timestamp: now(),
	})
}

// climbProfileInput holds arguments for the climb_profile tool.
type climbProfileInput struct {
	OATCelsius     float64 `json:"oat_c" jsonschema:"outside air temperature in degrees Celsius"`
	GrossWeightLbs float64 `json:"gross_weight_lbs" jsonschema:"gross weight in pounds"`
}

// ClimbProfileResponse is the JSON payload returned by climb_profile.
type ClimbProfileResponse struct {
	OATCelsius     float64            `json:"oat_c"`
	GrossWeightLbs float64            `json:"gross_weight_lbs"`
	Points         []types.ClimbPoint `json:"points"`
}

func (s *Server) handleClimbProfile(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input climbProfileInput,
) (*mcpsdk.CallToolResult, any, error) {
	in := form.Defaults()
	in.OATCelsius = input.OATCelsius
	in.GrossWeightLbs = input.GrossWeightLbs
	if err := form.Validate(in); err != nil {
		return s.errorResult(err), nil, nil
	}
	return textResult(ClimbProfileResponse{
		OATCelsius:     input.OATCelsius,
		GrossWeightLbs: input.GrossWeightLbs,
		Points: performance.ClimbProfile(input.OATCelsius, input.GrossWeightLbs,
			s.deps.ProfilePoints, s.deps.ProfileMaxAltFt),
	})
}

type listConditionsInput struct{}

func (s *Server) handleListConditions(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	_ listConditionsInput,
) (*mcpsdk.CallToolResult, any, error) {
	return textResult(map[string]any{
		"conditions":     performance.RunwayConditions(),
		"unknown_factor": performance.UnknownConditionFactor,
	})
}

// itemInput holds arguments for get_runway_condition.
type itemInput struct {
	ItemID string `json:"item_id" jsonschema:"identifier of the field, strip or job"`
}

// RunwayConditionResponse is the JSON payload for the runway condition tools.
type RunwayConditionResponse struct {
	ItemID    string  `json:"item_id"`
	Condition string  `json:"condition,omitempty"`
	Factor    float64 `json:"factor,omitempty"`
	Found     bool    `json:"found"`
}

func (s *Server) handleGetCondition(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input itemInput,
) (*mcpsdk.CallToolResult, any, error) {
	resp := RunwayConditionResponse{ItemID: input.ItemID}
	if cond, ok := s.deps.Runways.Get(input.ItemID); ok {
		resp.Condition = cond
		resp.Factor = performance.RunwayFactor(cond)
		resp.Found = true
	}
	return textResult(resp)
}

// saveConditionInput holds arguments for save_runway_condition.
type saveConditionInput struct {
	ItemID    string `json:"item_id" jsonschema:"identifier of the field, strip or job"`
	Condition string `json:"condition" jsonschema:"runway surface condition label"`
}

func (s *Server) handleSaveCondition(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input saveConditionInput,
) (*mcpsdk.CallToolResult, any, error) {
	if err := s.deps.Runways.Set(input.ItemID, input.Condition); err != nil {
		return s.errorResult(err), nil, nil
	}
	return textResult(RunwayConditionResponse{
		ItemID:    input.ItemID,
		Condition: input.Condition,
		Factor:    performance.RunwayFactor(input.Condition),
		Found:     true,
	})
}

// feedbackInput holds arguments for submit_feedback.
type feedbackInput struct {
	Rating  int    `json:"rating" jsonschema:"star rating from 1 to 5"`
	Comment string `json:"comment,omitempty" jsonschema:"free-text comment"`
}

func (s *Server) handleSubmitFeedback(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input feedbackInput,
) (*mcpsdk.CallToolResult, any, error) {
	fb, err := s.deps.Feedback.Submit(input.Rating, input.Comment)
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	return textResult(fb)
}

// ErrorResponse is returned when a tool cannot complete.
type ErrorResponse struct {
	Error       string `json:"error"`
	Code        string `json:"code"`
	Recoverable bool   `json:"recoverable"`
	Suggestion  string `json:"suggestion"`
	Timestamp   string `json:"timestamp"`
}

func (s *Server) errorResult(err error) *mcpsdk.CallToolResult {
	resp := ErrorResponse{
		Error:     err.Error(),
		Timestamp: now(),
	}

	var inputErr *types.InputError
	switch {
	case errors.As(err, &inputErr):
		resp.Code = "INVALID_INPUT"
		resp.Recoverable = true
		resp.Suggestion = "Keep " + inputErr.Field + " within the accepted range."
	case errors.Is(err, store.ErrUnknownCondition):
		resp.Code = "UNKNOWN_RUNWAY_CONDITION"
		resp.Recoverable = true
		resp.Suggestion = "Use a label from list_runway_conditions."
	case errors.Is(err, store.ErrEmptyItemID), errors.Is(err, store.ErrInvalidRating):
		resp.Code = "INVALID_INPUT"
		resp.Recoverable = true
		resp.Suggestion = "Correct the arguments and retry."
	default:
		resp.Code = "STORE_ERROR"
		resp.Recoverable = false
		resp.Suggestion = "Check application logs for details."
		s.deps.Logger.Errorf("tool failed: %v", err)
	}

	data, _ := json.Marshal(resp)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: true,
	}
}

func textResult(v any) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
