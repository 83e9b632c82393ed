package http

import (
	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/internal/model"
)

// --- Request DTOs ---

type processTextReq struct {
	Text *string `json:"text"`
}

func (r processTextReq) validate() error {
	if r.Text == nil {
		return extraction.ErrEmptyText
	}
	return nil
}

func (r processTextReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{Text: *r.Text}
}

// ---

type processReq struct {
	Tasks []extraction.BatchTask `json:"tasks"`
}

func (r processReq) toInput(outputPath string) extraction.BatchInput {
	return extraction.BatchInput{Tasks: r.Tasks, OutputPath: outputPath}
}

// --- Response DTOs ---

type processTextResp struct {
	ExtractedData model.EntityBundle `json:"extracted_data"`
}

func (h *handler) newProcessTextResp(out extraction.ExtractOutput) processTextResp {
	return processTextResp{ExtractedData: out.Bundle}
}

type processResp struct {
	Message string                   `json:"message"`
	Results []extraction.BatchResult `json:"results"`
	Skipped int                      `json:"skipped"`
	Failed  int                      `json:"failed"`
}

func (h *handler) newProcessResp(out extraction.BatchOutput) processResp {
	results := out.Results
	if results == nil {
		results = []extraction.BatchResult{}
	}
	return processResp{
		Message: "Data processed successfully",
		Results: results,
		Skipped: out.Skipped,
		Failed:  out.Failed,
	}
}

type processFileResp struct {
	Message   string `json:"message"`
	File      string `json:"file"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

func (h *handler) newProcessFileResp(out extraction.ProcessFileOutput) processFileResp {
	return processFileResp{
		Message:   "Data processed successfully",
		File:      out.OutputPath,
		Processed: out.Processed,
		Skipped:   out.Skipped,
		Failed:    out.Failed,
	}
}
