package llm

import (
	"strings"

	"github.com/LogeshBharathi/pdf-job-parser-backend/constants"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
)

// DefaultMaxPromptChars bounds the source text embedded in the prompt so a
// large document cannot exceed the model's input limit. The raw_text snippet
// on the record is taken from the untruncated text, independent of this.
const DefaultMaxPromptChars = 30000

// BuildPrompt composes the single extraction prompt: fixed task instructions
// naming the seven target fields with per-field hints on where each fact
// tends to live, the sentinel rule, the JSON-only rule, and the truncated
// source text.
func BuildPrompt(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxPromptChars
	}
	truncated := extract.Truncate(text, maxChars)

	var b strings.Builder
	b.WriteString("You are an expert data extraction AI. From the following raw text extracted from a government job notification PDF, ")
	b.WriteString("extract the specified details. The text might be poorly formatted due to the PDF-to-text conversion. ")
	b.WriteString("Find the relevant information and structure it into a clean JSON object.\n\n")
	b.WriteString("JSON keys to extract:\n")
	b.WriteString("- 'job_title': The official name of the post(s).\n")
	b.WriteString("- 'department': The name of the ministry or department conducting the recruitment.\n")
	b.WriteString("- 'vacancies': The total number of vacancies. Extract a number if possible.\n")
	b.WriteString("- 'eligibility': A combined summary of the required age limits AND educational qualifications. Search for sections like 'Age Limit' and 'Educational Qualifications'.\n")
	b.WriteString("- 'salary': A summary of the pay scale, including level and initial pay. Actively look for keywords like 'Pay Level', 'Scale of Pay', 'Rs.', or 'Pay Matrix'.\n")
	b.WriteString("- 'application_deadline': The closing date for applications. Format as YYYY-MM-DD if possible, otherwise keep the original text.\n")
	b.WriteString("- 'application_url': The official website for applications. Look for text like 'Candidates must apply online through' or website domains ending in '.gov.in' or '.nic.in'.\n\n")
	b.WriteString("Instructions:\n")
	b.WriteString("- If a field is genuinely not found after a thorough search, use the string '" + constants.Sentinel + "'. Never use null and never omit a key.\n")
	b.WriteString("- The output MUST be a valid JSON object. Do not output any other text or explanations.\n\n")
	b.WriteString("--- PDF TEXT START ---\n")
	b.WriteString(truncated)
	b.WriteString("\n--- PDF TEXT END ---")
	return b.String()
}
