package insight

import (
	"bytes"
	"text/template"
)

const analysisSystemPrompt = `You are an expert SAT tutor analyzing a student's practice data. You receive their weakest skills with proficiency scores (0-100), recent accuracy (0-1), and attempt counts.

Instructions:
- Diagnose each skill in one sentence grounded in the numbers given.
- Only reference skill IDs from the provided list. Do NOT invent skills.
- Order focus_order by urgency: low proficiency and low accuracy first, respecting prerequisite logic (fundamentals before advanced topics).
- Estimate the score impact conservatively; closing a handful of weaknesses is rarely worth more than 150 points.
- Keep the summary to two or three sentences a student can act on.`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(
	`Weakest skills for this student, most urgent first:
{{range .}}- {{.SkillID}} ({{.Name}}, {{.Subject}}/{{.Domain}}): proficiency {{printf "%.0f" .Proficiency}}/100, recent accuracy {{printf "%.2f" .RecentAccuracy}}, {{.Attempts}} attempts, priority {{.Priority}}
{{end}}
Produce the structured weakness report.`))

func buildAnalysisMessage(stats []SkillStat) (string, error) {
	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, stats); err != nil {
		return "", err
	}
	return buf.String(), nil
}
