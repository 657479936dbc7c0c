package models

import "time"

// RunReport summarizes one conversion run.
type RunReport struct {
	RunID          string        `json:"runId"`
	FilesProcessed int           `json:"filesProcessed"`
	FilesSkipped   int           `json:"filesSkipped"`
	Declarations   int           `json:"declarations"`
	Organizations  int           `json:"organizations"`
	Archives       int           `json:"archives"`
	Started        time.Time     `json:"started"`
	Elapsed        time.Duration `json:"elapsed"`
}
