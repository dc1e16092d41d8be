// Package prompts holds templates for interacting with Large Language Models.
package prompts

import (
	"bytes"
	"fmt"
	"text/template"

	"fraudscope/models"
)

// Persona describes the fixed role, goal, and backstory supplied with every
// analysis call to bias the model's response style. The goal is rendered per
// run because it names the customer under assessment.
type Persona struct {
	Role      string
	Goal      string
	Backstory string
}

const (
	// AnalystRole is the persona role for the fraud analyst.
	AnalystRole = "Senior Fraud Risk Analyst"

	// AnalystBackstory biases the model toward enterprise fraud expertise.
	AnalystBackstory = "15+ years of experience in enterprise fraud detection, specializing in tech companies."

	// analystGoalTemplate names the subject of the assessment.
	analystGoalTemplate = "Assess fraud risk for {{.CustomerName}} in {{.Industry}}"
)

// AnalystSystemTemplate renders the persona into a system message.
const analystSystemTemplate = `You are a {{.Role}}. {{.Backstory}}

Your goal: {{.Goal}}.`

// AssessmentTaskTemplate is the user-facing instruction for one analysis run.
// It names the required analysis dimensions and the exact output contract.
const assessmentTaskTemplate = `<instructions>
Analyze {{.CustomerName}}, a company in the {{.Industry}} space, for fraud risks.
{{- if .Description}}
Company description provided by the requester: {{.Description}}
{{- end}}

Consider: industry red flags, compliance, financial and operational patterns, and market threats.
</instructions>

<rules>
- **Strict JSON Output:** Your entire response MUST be a single, valid JSON object. Do not include any text, explanations, or Markdown formatting before or after the JSON object.
- "risk_score" must be a number between 0 and 10.
- "risk_summary" must be a brief risk summary.
- "risk_factors" must contain exactly 3 main risk factors.
</rules>

<output_format>
Return ONLY the following JSON structure. Do not deviate from this format.

{
  "risk_score": 6.5,
  "risk_summary": "Brief summary of the overall fraud risk.",
  "risk_factors": [
    "First main risk factor",
    "Second main risk factor",
    "Third main risk factor"
  ]
}
</output_format>`

var (
	goalTmpl   = template.Must(template.New("analyst-goal").Parse(analystGoalTemplate))
	systemTmpl = template.Must(template.New("analyst-system").Parse(analystSystemTemplate))
	taskTmpl   = template.Must(template.New("assessment-task").Parse(assessmentTaskTemplate))
)

// AnalystPersona builds the analyst persona for one request.
func AnalystPersona(req models.AnalysisRequest) (Persona, error) {
	var goal bytes.Buffer
	if err := goalTmpl.Execute(&goal, req); err != nil {
		return Persona{}, fmt.Errorf("render goal: %w", err)
	}
	return Persona{
		Role:      AnalystRole,
		Goal:      goal.String(),
		Backstory: AnalystBackstory,
	}, nil
}

// RenderAnalystSystem renders the persona system message for one request.
func RenderAnalystSystem(req models.AnalysisRequest) (string, error) {
	persona, err := AnalystPersona(req)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := systemTmpl.Execute(&buf, persona); err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return buf.String(), nil
}

// RenderAssessmentTask renders the task instruction for one request. The
// request fields are interpolated verbatim; the destination is a natural
// language model, so no escaping is applied.
func RenderAssessmentTask(req models.AnalysisRequest) (string, error) {
	var buf bytes.Buffer
	if err := taskTmpl.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("render task prompt: %w", err)
	}
	return buf.String(), nil
}
