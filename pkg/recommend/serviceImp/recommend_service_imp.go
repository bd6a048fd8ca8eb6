package serviceImp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"pestplan/entities"
	"pestplan/pkg/ai"
	recrepo "pestplan/pkg/recommend/repository"
	"pestplan/pkg/recommend/service"
	"pestplan/pkg/recommend/types"
	schedrepo "pestplan/pkg/schedule/repository"
)

// requiredKeys in declared order; missing-key errors enumerate them in
// exactly this order.
var requiredKeys = []string{
	"plant_name", "disease_percentage", "previous_fertilizers",
	"acres", "location", "predicted_class",
}

const systemInstructions = `You are an agronomy assistant. Suggest pesticide recommendations and treatment
schedules based on crop, disease, severity, and field details.
Return strictly JSON only.`

type RecSvc struct {
	llm   ai.Client // nil when no credential is configured
	recs  recrepo.RecommendRepository
	tasks schedrepo.ScheduleRepository
}

func NewRecommendService(llm ai.Client, recs recrepo.RecommendRepository, tasks schedrepo.ScheduleRepository) service.RecommendService {
	return &RecSvc{llm: llm, recs: recs, tasks: tasks}
}

func (s *RecSvc) Recommend(ctx context.Context, body io.Reader) (res *types.RecommendationResult, err error) {
	// anything unexpected still comes back as a tagged failure, never a panic
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = types.Fail(types.FailInternal, fmt.Sprintf("%v", r))
		}
	}()

	if s.llm == nil {
		return nil, types.Fail(types.FailConfig, "Missing GOOGLE_API_KEY env var")
	}

	var data map[string]any
	if body == nil {
		return nil, types.Fail(types.FailInput, "Expected JSON body")
	}
	if err := json.NewDecoder(body).Decode(&data); err != nil || len(data) == 0 {
		return nil, types.Fail(types.FailInput, "Expected JSON body")
	}

	req, ferr := validatePayload(data)
	if ferr != nil {
		return nil, ferr
	}

	raw, err := s.llm.Generate(ctx, renderPrompt(req))
	if err != nil {
		return nil, types.Fail(types.FailProvider, err.Error())
	}

	payload, ferr := extractPlan(raw)
	if ferr != nil {
		return nil, ferr
	}

	res = buildSchedule(payload, time.Now().UTC())
	s.saveHistory(req, payload, res)
	return res, nil
}

func validatePayload(data map[string]any) (*types.RecommendationRequest, *types.Failure) {
	var missing []string
	for _, k := range requiredKeys {
		if _, ok := data[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, types.Fail(types.FailInput, "Missing: "+strings.Join(missing, ", "))
	}

	disease, ok1 := asNumber(data["disease_percentage"])
	acres, ok2 := asNumber(data["acres"])
	if !ok1 || !ok2 {
		return nil, types.Fail(types.FailInput, "disease_percentage and acres must be numbers.")
	}

	prev := "None"
	if v, ok := data["previous_fertilizers"].(string); ok && v != "" {
		prev = v
	}

	return &types.RecommendationRequest{
		PlantName:           asString(data["plant_name"]),
		DiseasePercentage:   disease,
		PreviousFertilizers: prev,
		Acres:               acres,
		Location:            asString(data["location"]),
		PredictedClass:      asString(data["predicted_class"]),
	}, nil
}

// asNumber accepts JSON numbers and numeric strings; anything else fails.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func renderPrompt(r *types.RecommendationRequest) string {
	return fmt.Sprintf(`SYSTEM:
%s

INPUT:
- plant_name: %s
- disease_percentage: %s %%
- previous_fertilizers: %s
- acres: %s
- location: %s
- predicted_class: %s

OUTPUT:
Provide JSON strictly in this format:
{
  "confidence": 0.9,
  "treatment_schedule": [
    {
      "product": "Azoxystrobin + Difenoconazole",
      "timing": "Day 0",
      "notes": "Systemic fungicide"
    },
    {
      "product": "Mancozeb",
      "timing": "Day 7",
      "notes": "Protectant fungicide"
    }
  ]
}`,
		systemInstructions,
		r.PlantName,
		num(r.DiseasePercentage),
		r.PreviousFertilizers,
		num(r.Acres),
		r.Location,
		r.PredictedClass,
	)
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// extractPlan slices the model reply from the first "{" to the last "}"
// and parses it. No brace at all means an empty plan; a slice that fails
// to parse is a provider failure. The heuristic assumes the model wraps
// one JSON object in prose or markdown fences.
func extractPlan(raw string) (*types.PlanPayload, *types.Failure) {
	text := strings.TrimSpace(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	var payload types.PlanPayload
	if start == -1 || end == -1 {
		return &payload, nil
	}
	if end < start {
		return nil, types.Fail(types.FailProvider, "unexpected end of JSON input")
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, types.Fail(types.FailProvider, err.Error())
	}
	return &payload, nil
}

func buildSchedule(p *types.PlanPayload, now time.Time) *types.RecommendationResult {
	res := &types.RecommendationResult{
		Pesticides: []string{},
		Schedules:  []types.TreatmentScheduleOut{},
		Confidence: p.Confidence,
	}
	for i, item := range p.TreatmentSchedule {
		name := "Unknown"
		if item.Product != nil {
			name = *item.Product
		}
		res.Pesticides = append(res.Pesticides, name)
		res.Schedules = append(res.Schedules, types.TreatmentScheduleOut{
			PesticideName: name,
			ScheduledDate: now.AddDate(0, 0, i*7).Format("2006-01-02"),
			Completed:     false,
		})
	}
	return res
}

// saveHistory persists the request and its derived tasks. Best effort:
// storage problems are logged, never folded into the response, so the
// success/fail contract of the endpoint stays intact.
func (s *RecSvc) saveHistory(req *types.RecommendationRequest, p *types.PlanPayload, res *types.RecommendationResult) {
	if s.recs == nil || s.tasks == nil {
		return
	}
	rec := &entities.Recommendation{
		PlantName:           req.PlantName,
		DiseasePercentage:   req.DiseasePercentage,
		PreviousFertilizers: req.PreviousFertilizers,
		Acres:               req.Acres,
		Location:            req.Location,
		PredictedClass:      req.PredictedClass,
		Confidence:          p.Confidence,
	}
	if err := s.recs.Create(rec); err != nil {
		log.Printf("[recommend] save history: %v", err)
		return
	}
	tasks := make([]entities.TreatmentTask, 0, len(res.Schedules))
	for i, out := range res.Schedules {
		date, _ := time.Parse("2006-01-02", out.ScheduledDate)
		tasks = append(tasks, entities.TreatmentTask{
			RecommendationID: rec.RecommendationID,
			PesticideName:    out.PesticideName,
			ScheduledDate:    date,
			Timing:           p.TreatmentSchedule[i].Timing,
			Notes:            p.TreatmentSchedule[i].Notes,
			Completed:        false,
		})
	}
	if len(tasks) == 0 {
		return
	}
	if err := s.tasks.BulkInsert(tasks); err != nil {
		log.Printf("[recommend] save tasks: %v", err)
	}
}
