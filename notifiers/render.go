package notifiers

import (
	"strings"

	"github.com/pitchpool/pitchpool.api/data"
)

// RenderPlaceholders substitutes outreach placeholders in a template string
// with the job's contact and opportunity fields. Unknown placeholders are
// left untouched so a typo in a template is visible instead of silently
// eaten.
func RenderPlaceholders(s string, job data.OutreachJob) string {
	replacer := strings.NewReplacer(
		"{{FirstName}}", job.FirstName,
		"{{LastName}}", job.LastName,
		"{{Company}}", job.Company,
		"{{JournalistName}}", job.JournalistName,
		"{{Publication}}", job.Publication,
		"{{Topic}}", job.Topic,
	)
	return replacer.Replace(s)
}
