package prompts

import (
	"strings"
	"testing"

	"fraudscope/models"
)

func TestRenderAssessmentTaskContainsInputsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		req  models.AnalysisRequest
	}{
		{
			name: "defaults",
			req: models.AnalysisRequest{
				CustomerName: "TechCorp Solutions",
				Industry:     "AI Software Company",
			},
		},
		{
			name: "with description",
			req: models.AnalysisRequest{
				CustomerName: "Acme Payments Ltd",
				Industry:     "Payment Processing",
				Description:  "Series B fintech operating in 12 countries",
			},
		},
		{
			name: "fields with special template characters",
			req: models.AnalysisRequest{
				CustomerName: `O'Brien & Sons {{Holdings}}`,
				Industry:     "Import/Export <wholesale>",
				Description:  `known as "OBS"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderAssessmentTask(tt.req)
			if err != nil {
				t.Fatalf("RenderAssessmentTask() error = %v", err)
			}
			if !strings.Contains(got, tt.req.CustomerName) {
				t.Errorf("prompt missing customer name %q", tt.req.CustomerName)
			}
			if !strings.Contains(got, tt.req.Industry) {
				t.Errorf("prompt missing industry %q", tt.req.Industry)
			}
			if tt.req.Description != "" && !strings.Contains(got, tt.req.Description) {
				t.Errorf("prompt missing description %q", tt.req.Description)
			}
		})
	}
}

func TestRenderAssessmentTaskOmitsEmptyDescription(t *testing.T) {
	got, err := RenderAssessmentTask(models.AnalysisRequest{
		CustomerName: "TechCorp Solutions",
		Industry:     "AI Software Company",
	})
	if err != nil {
		t.Fatalf("RenderAssessmentTask() error = %v", err)
	}
	if strings.Contains(got, "Company description") {
		t.Error("prompt should not mention a description when none was given")
	}
}

func TestRenderAssessmentTaskNamesContract(t *testing.T) {
	got, err := RenderAssessmentTask(models.AnalysisRequest{
		CustomerName: "X",
		Industry:     "Y",
	})
	if err != nil {
		t.Fatalf("RenderAssessmentTask() error = %v", err)
	}
	for _, want := range []string{"risk_score", "risk_summary", "risk_factors", "exactly 3", "between 0 and 10"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing contract element %q", want)
		}
	}
	for _, dimension := range []string{"red flags", "compliance", "financial", "market"} {
		if !strings.Contains(got, dimension) {
			t.Errorf("prompt missing analysis dimension %q", dimension)
		}
	}
}

func TestRenderAnalystSystem(t *testing.T) {
	req := models.AnalysisRequest{CustomerName: "TechCorp Solutions", Industry: "AI Software Company"}
	got, err := RenderAnalystSystem(req)
	if err != nil {
		t.Fatalf("RenderAnalystSystem() error = %v", err)
	}
	if !strings.Contains(got, AnalystRole) {
		t.Errorf("system prompt missing role")
	}
	if !strings.Contains(got, AnalystBackstory) {
		t.Errorf("system prompt missing backstory")
	}
	if !strings.Contains(got, "Assess fraud risk for TechCorp Solutions in AI Software Company") {
		t.Errorf("system prompt missing rendered goal, got: %s", got)
	}
}
