package fileclassify

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a professional file classification assistant. Your task is to analyze file names and extract structured information.

You must ALWAYS return a valid JSON object with the following fields:
- category: The category/type of the file (e.g., "Work", "Personal", "Study", "Finance", etc.)
- year: The year associated with the file (4-digit format, e.g., "2024")
- month: The month associated with the file (2-digit format, e.g., "01", "12")
- summary: A brief summary or description of the file content
- original_name: The original file name without extension

Rules:
1. If you cannot determine a field, use "Unknown" as the value.
2. For year: Try to extract from file name, if not found, use current year.
3. For month: Try to extract from file name, if not found, use "Unknown".
4. For category: Infer from file name and context. Common categories: Work, Personal, Study, Finance, Photos, Documents, Contract, Report, Invoice, Manual, etc.
5. For Chinese file names, understand the context and extract information accordingly.
   - 工作/会议/报告 → Work
   - 财务/发票/账单 → Finance
   - 合同/协议 → Contract
   - 个人/私人 → Personal
   - 学习/课程 → Study
6. Always return valid JSON format.
7. Field names must be in lowercase English.

Example 1 (Chinese file):
Input: "2024年度财务报告_Q1.pdf"
Output:
{
    "category": "Finance",
    "year": "2024",
    "month": "Unknown",
    "summary": "Q1 Financial Report",
    "original_name": "2024年度财务报告_Q1"
}

Example 2 (English file):
Input: "meeting_notes_2023_12_15.docx"
Output:
{
    "category": "Work",
    "year": "2023",
    "month": "12",
    "summary": "Meeting notes from December 15",
    "original_name": "meeting_notes_2023_12_15"
}

Example 3 (Chinese contract):
Input: "采购合同_2024_03.pdf"
Output:
{
    "category": "Contract",
    "year": "2024",
    "month": "03",
    "summary": "Purchase contract",
    "original_name": "采购合同_2024_03"
}`

// SystemPrompt returns the base system prompt used for classification.
func SystemPrompt() string {
	return systemPrompt
}

// BuildDynamicPrompt extends the base system prompt with an enum constraint
// block for every rule that carries options. Rules without options leave the
// prompt unchanged.
func BuildDynamicPrompt(rules []Rule) string {
	var constraints []string
	for _, rule := range rules {
		if len(rule.Options) == 0 {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "\n\nIMPORTANT CONSTRAINT for field '%s':\n", rule.Key)
		fmt.Fprintf(&b, "The field '%s' MUST be one of the following values: %s.\n", rule.Key, strings.Join(rule.Options, ", "))
		b.WriteString("If unsure, pick the closest match from these options. Do not use any other value.\n")
		b.WriteString("This is a classification task (multiple choice), not open-ended generation.")
		constraints = append(constraints, b.String())
	}

	if len(constraints) == 0 {
		return systemPrompt
	}

	return systemPrompt + "\n" + strings.Join(constraints, "\n")
}
