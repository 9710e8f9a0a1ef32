package schema

import (
	"podcast-summarizer/internal/domain/dto"
	consts "podcast-summarizer/pkg/constants"
)

// ValidateSummarize fills the default summary style and validates the request in place.
func (v *Validator) ValidateSummarize(req *dto.SummarizeRequestDTO) error {
	if req.SummaryType == "" {
		req.SummaryType = consts.DefaultSummaryType
	}
	if problems := v.violations(req); len(problems) > 0 {
		return &ValidationError{Violations: problems}
	}
	return nil
}

func (v *Validator) ValidateTranscribe(req *dto.TranscribeRequestDTO) error {
	if problems := v.violations(req); len(problems) > 0 {
		return &ValidationError{Violations: problems}
	}
	return nil
}
