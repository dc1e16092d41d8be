package ui

import (
	"fmt"
	"io"
	"strconv"

	"fraudscope/models"
)

// FormatScore renders the bounded score as "<value>/10".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "/10"
}

// RenderAssessment writes the validated assessment for one run: the score,
// the summary, and the three factors numbered in reply order.
func RenderAssessment(w io.Writer, req models.AnalysisRequest, assessment models.RiskAssessment) {
	fmt.Fprintln(w, StylePrefixDone.Render("✅ Analysis complete")+StyleSubtle.Render(" — "+req.CustomerName))
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleSectionTitle.Render("📊 Risk Score"))
	fmt.Fprintln(w, "  "+StyleTitle.Render(FormatScore(assessment.RiskScore)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleSectionTitle.Render("📝 Summary"))
	fmt.Fprintln(w, "  "+assessment.RiskSummary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleSectionTitle.Render("⚠️ Key Risk Factors"))
	for i, factor := range assessment.RiskFactors {
		fmt.Fprintf(w, "  %d. %s\n", i+1, factor)
	}
}

// RenderError writes the single inline error notice for a failed run.
func RenderError(w io.Writer, err error) {
	fmt.Fprintln(w, StylePrefixError.Render("❌ Error: ")+err.Error())
}
