package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fraudscope/models"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{7.5, "7.5/10"},
		{0, "0/10"},
		{10, "10/10"},
		{3.25, "3.25/10"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRenderAssessment(t *testing.T) {
	var buf bytes.Buffer
	req := models.AnalysisRequest{CustomerName: "TechCorp Solutions", Industry: "AI Software Company"}
	assessment := models.RiskAssessment{
		RiskScore:   7.5,
		RiskSummary: "moderate risk",
		RiskFactors: []string{"unaudited financials", "new market", "thin compliance team"},
	}

	RenderAssessment(&buf, req, assessment)
	out := buf.String()

	if !strings.Contains(out, "7.5/10") {
		t.Errorf("output missing score, got:\n%s", out)
	}
	if !strings.Contains(out, "moderate risk") {
		t.Errorf("output missing summary")
	}
	wantLines := []string{
		"1. unaudited financials",
		"2. new market",
		"3. thin compliance team",
	}
	lastIdx := -1
	for _, line := range wantLines {
		idx := strings.Index(out, line)
		if idx == -1 {
			t.Errorf("output missing factor line %q", line)
			continue
		}
		if idx < lastIdx {
			t.Errorf("factor line %q out of order", line)
		}
		lastIdx = idx
	}
	if strings.Contains(out, "4.") {
		t.Errorf("output has more than 3 numbered factors:\n%s", out)
	}
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	RenderError(&buf, errors.New("analysis failed: connection refused"))
	out := buf.String()

	if !strings.Contains(out, "analysis failed: connection refused") {
		t.Errorf("error output missing message, got:\n%s", out)
	}
	if lines := strings.Count(strings.TrimRight(out, "\n"), "\n"); lines != 0 {
		t.Errorf("error notice should be a single line, got %d extra lines", lines)
	}
}
