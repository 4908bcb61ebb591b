package extract

import (
	"regexp"
	"strings"

	"github.com/atozflooring/po-extract/internal/template"
)

var (
	sectionBoundaryRe = regexp.MustCompile(`(?i)BEST\s+CONTACT|JOB\s+DETAILS`)

	supervisorSectionNameRe   = regexp.MustCompile(`(?i)Name:?\s*([A-Za-z\s\-'\.]+?)\n`)
	supervisorSectionMobileRe = regexp.MustCompile(`(?i)Mobile:?\s*(\(?\d{4}\)?[-.\s]?\d{3}[-.\s]?\d{3})`)
	supervisorSectionEmailRe  = regexp.MustCompile(`(?i)Email:?\s*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)

	supervisorFallbackPatterns = ci(
		`Supervisor:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Contractor:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		`Representative:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
	)
)

// extractJobAndSupervisor fills the job number and supervisor fields.
// Ambrose and Australian Restoration documents stop after the generic
// patterns; their vendor extensions read their own layouts.
func extractJobAndSupervisor(text string, rec *Record, tpl *template.Template) {
	if v := extractField(text, supervisorNamePatterns); v != "" {
		rec.SupervisorName = v
	}
	if v := extractField(text, jobNumberPatterns); v != "" {
		rec.JobNumber = v
	}

	if tpl.Key == template.KeyAmbrose || tpl.Key == template.KeyAustralianRestoration {
		return
	}

	section := supervisorSection(text, tpl)
	if section == "" {
		if v := extractField(text, supervisorFallbackPatterns); v != "" {
			rec.SupervisorName = v
		}
		return
	}

	if m := supervisorSectionNameRe.FindStringSubmatch(section); m != nil {
		rec.SupervisorName = strings.TrimSpace(m[1])
	}
	if m := supervisorSectionMobileRe.FindStringSubmatch(section); m != nil {
		rec.SupervisorPhone = strings.TrimSpace(m[1])
	}
	if m := supervisorSectionEmailRe.FindStringSubmatch(section); m != nil {
		rec.SupervisorEmail = strings.TrimSpace(m[1])
	}
}

// supervisorSection returns the text between the template's supervisor
// header and the next section boundary, or "" when the header is
// absent.
func supervisorSection(text string, tpl *template.Template) string {
	if tpl.SupervisorSection == nil {
		return ""
	}
	loc := tpl.SupervisorSection.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if b := sectionBoundaryRe.FindStringIndex(rest); b != nil {
		rest = rest[:b[0]]
	}
	return rest
}
