package extraction

import "nlp-task-calendar/internal/model"

// --- UseCase Inputs ---

type ExtractInput struct {
	Text string
}

// BatchTask is one entry of the "tasks" array. Entries without text are skipped.
type BatchTask struct {
	Text string `json:"text"`
}

type BatchInput struct {
	Tasks []BatchTask
	// OutputPath, when set, receives the results document.
	OutputPath string
}

type ProcessFileInput struct {
	InputPath  string
	OutputPath string
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	Bundle model.EntityBundle
}

// BatchResult pairs an input text with its bundle.
type BatchResult struct {
	OriginalText      string             `json:"original_text"`
	ExtractedEntities model.EntityBundle `json:"extracted_entities"`
}

type BatchOutput struct {
	Results []BatchResult
	Skipped int
	Failed  int
}

type ProcessFileOutput struct {
	OutputPath string
	Processed  int
	Skipped    int
	Failed     int
}

// --- File documents ---

// TasksDocument is the batch input file.
type TasksDocument struct {
	Tasks []BatchTask `json:"tasks"`
}

// ResultsDocument is the batch output file.
type ResultsDocument struct {
	Results []BatchResult `json:"results"`
}
