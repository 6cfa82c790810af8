package model

// LevelPerformance is the correct/total/percentage triple used by both the
// session-scoped breakdown and the durable progress report.
type LevelPerformance struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ProgressReport aggregates persisted attempts by topic and, independently, by
// SOLO level.
type ProgressReport struct {
	TopicPerformance map[string]LevelPerformance    `json:"topicPerformance"`
	LevelPerformance map[SOLOLevel]LevelPerformance `json:"levelPerformance"`
	TotalAttempts    int                            `json:"totalAttempts"`
}
