package models

// AnalysisResult is one successfully analyzed resume within a batch.
type AnalysisResult struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Analysis string  `json:"analysis"`
}

// AnalysisFailure reports why one resume in a batch could not be analyzed.
type AnalysisFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BatchResult partitions a batch into ranked successes and per-file failures.
type BatchResult struct {
	Results []AnalysisResult  `json:"results"`
	Errors  []AnalysisFailure `json:"errors"`
}

type AnalyzeResponse struct {
	Success bool              `json:"success"`
	Results []AnalysisResult  `json:"results"`
	Errors  []AnalysisFailure `json:"errors"`
}

type ExportRequest struct {
	Results []AnalysisResult `json:"results"`
}

type ExportResponse struct {
	Success  bool   `json:"success"`
	CSV      string `json:"csv"`
	Filename string `json:"filename"`
}

type HistoryItem struct {
	ID               string `json:"id"`
	OriginalFileName string `json:"original_filename"`
	UploadedAt       string `json:"uploaded_at"`
}
