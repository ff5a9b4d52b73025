package agentapi

// Task lifecycle statuses reported by the cloud API.
const (
	TaskStatusStarted  = "started"
	TaskStatusPaused   = "paused"
	TaskStatusFinished = "finished"
	TaskStatusStopped  = "stopped"
)

type CreateTaskRequest struct {
	Task                 string `json:"task"`
	StructuredOutputJSON string `json:"structuredOutputJson,omitempty"`
	MaxSteps             int    `json:"maxSteps,omitempty"`
}

type CreateTaskResponse struct {
	ID string `json:"id"`
}

type TaskView struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output string `json:"output"`
}
