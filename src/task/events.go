package task

import "time"

type TaskEvent struct {
	JobID     string        `json:"job_id"`
	Type      TaskEventType `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
}

type TaskEventType string

const (
	Started    TaskEventType = "started"
	Downloaded TaskEventType = "downloaded"
	Decoded    TaskEventType = "decoded"
	Processed  TaskEventType = "processed"
	Failed     TaskEventType = "failed"
	Completed  TaskEventType = "completed"
	Stopped    TaskEventType = "stopped"
)
