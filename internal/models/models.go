// Package models defines the JSON records returned by the Beeminder API.
package models

// Goal is a single tracked commitment. The API returns the same shape for
// the collection listing and the single-goal endpoint; the single-goal
// endpoint simply populates more of the optional fields.
//
// Timestamps are Unix seconds. Fields the UI must be able to distinguish
// from zero are pointers; everything else decodes null to its zero value.
type Goal struct {
	ID          string `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	CurVal  float64 `json:"curval"`
	GoalVal float64 `json:"goalval"`
	Rate    float64 `json:"rate"`
	CurRate float64 `json:"currate,omitempty"`
	Delta   float64 `json:"delta,omitempty"`

	LoseDate  *int64 `json:"losedate,omitempty"`
	UpdatedAt *int64 `json:"updated_at,omitempty"`
	GoalDate  *int64 `json:"goaldate,omitempty"`

	Lost   bool `json:"lost"`
	Won    bool `json:"won"`
	Frozen bool `json:"frozen"`
	Queued bool `json:"queued,omitempty"`

	RUnits      string   `json:"runits,omitempty"`
	GUnits      string   `json:"gunits,omitempty"`
	GoalType    string   `json:"goal_type,omitempty"`
	Pledge      float64  `json:"pledge"`
	AutoData    string   `json:"autodata,omitempty"`
	FinePrint   string   `json:"fineprint,omitempty"`
	YAxis       string   `json:"yaxis,omitempty"`
	DeltaText   string   `json:"delta_text,omitempty"`
	SafeBuf     int      `json:"safebuf,omitempty"`
	Deadline    int      `json:"deadline,omitempty"`
	WeekendsOff bool     `json:"weekends_off,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	GraphURL string `json:"graph_url,omitempty"`
	SVGURL   string `json:"svg_url,omitempty"`
	NumPts   int    `json:"numpts,omitempty"`

	LastDatapoint *Datapoint `json:"last_datapoint,omitempty"`
}

// Datapoint is a single timestamped measurement submitted against a goal.
type Datapoint struct {
	ID        string  `json:"id,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
	Daystamp  string  `json:"daystamp,omitempty"`
	Value     float64 `json:"value"`
	Comment   string  `json:"comment,omitempty"`
	RequestID string  `json:"requestid,omitempty"`
	UpdatedAt int64   `json:"updated_at,omitempty"`
}

// User is the account record behind a goal collection.
type User struct {
	ID          string   `json:"id,omitempty"`
	Username    string   `json:"username"`
	Goals       []string `json:"goals"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
	Timezone    string   `json:"timezone,omitempty"`
	UrgencyLoad float64  `json:"urgency_load,omitempty"`
	Deadbeat    bool     `json:"deadbeat,omitempty"`
}
