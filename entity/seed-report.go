package entity

import "time"

// SeedStep is the outcome of one seeding category: created remote ids
// plus the records that were skipped after a failed call.
type SeedStep struct {
	Name    string  `json:"name" bson:"name"`
	Created []int64 `json:"created" bson:"created"`
	Skipped int     `json:"skipped" bson:"skipped"`
}

// SeedReport aggregates a full seeding run. Stored as-is in MongoDB
// and summarized into the SQL ledger when those stores are enabled.
type SeedReport struct {
	RunID    string     `json:"run_id" bson:"run_id"`
	Started  time.Time  `json:"started" bson:"started"`
	Finished time.Time  `json:"finished" bson:"finished"`
	Steps    []SeedStep `json:"steps" bson:"steps"`
}

func (r *SeedReport) AddStep(step SeedStep) {
	r.Steps = append(r.Steps, step)
}

// TotalCreated counts created records across all steps.
func (r *SeedReport) TotalCreated() int {
	total := 0
	for _, step := range r.Steps {
		total += len(step.Created)
	}
	return total
}

// TotalSkipped counts skipped records across all steps.
func (r *SeedReport) TotalSkipped() int {
	total := 0
	for _, step := range r.Steps {
		total += step.Skipped
	}
	return total
}

// SeedRecord is one ledger row: a record created remotely during a run.
type SeedRecord struct {
	RunID   string `json:"run_id"`
	Model   string `json:"model"`
	Remote  int64  `json:"remote_id"`
	Label   string `json:"label"`
	Created time.Time
}
