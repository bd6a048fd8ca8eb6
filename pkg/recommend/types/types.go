package types

// RecommendationRequest holds the /recommend payload after validation.
type RecommendationRequest struct {
	PlantName           string
	DiseasePercentage   float64
	PreviousFertilizers string // literal "None" when absent, null or empty
	Acres               float64
	Location            string
	PredictedClass      string
}

// TreatmentItem is one entry of the model's treatment_schedule list.
// The shape is provider-defined; every field is optional. Product is a
// pointer so an absent key can default to "Unknown" while an explicit
// empty string passes through.
type TreatmentItem struct {
	Product *string `json:"product"`
	Timing  string  `json:"timing"`
	Notes   string  `json:"notes"`
}

// PlanPayload is the JSON object expected somewhere inside the model reply.
type PlanPayload struct {
	Confidence        float64         `json:"confidence"`
	TreatmentSchedule []TreatmentItem `json:"treatment_schedule"`
}

type TreatmentScheduleOut struct {
	PesticideName string `json:"pesticide_name"`
	ScheduledDate string `json:"scheduled_date"`
	Completed     bool   `json:"completed"`
}

// RecommendationResult is the success half of the /recommend response.
type RecommendationResult struct {
	Pesticides []string
	Schedules  []TreatmentScheduleOut
	Confidence float64
}

type FailKind int

const (
	FailConfig FailKind = iota // missing provider credential
	FailInput                  // malformed body, missing or non-numeric fields
	FailProvider               // model call failed or reply unparseable
	FailInternal
)

// Failure is a tagged error returned through the single service boundary.
// Controllers map the kind to an HTTP status.
type Failure struct {
	Kind    FailKind
	Message string
}

func (f *Failure) Error() string { return f.Message }

func Fail(kind FailKind, msg string) *Failure {
	return &Failure{Kind: kind, Message: msg}
}
