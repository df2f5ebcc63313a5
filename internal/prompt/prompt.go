// Package prompt builds the prompts for the assistant's model calls.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SystemInstruction is attached to every generation call. The model
// answers in the language of the question; staff at the center ask in
// Vietnamese.
const SystemInstruction = `You are the assistant of a tutoring-center administration system.
You answer questions from center staff about students, study groups, teachers,
fees, payments, schedules, exams and grades.
Answer in the same language as the question. Be concise and factual.
Never mention internal APIs, JSON, or how the data was obtained.`

// ForCount asks the model to phrase a count answer. Only the number is
// given, never the underlying records.
func ForCount(query string, count int) string {
	return fmt.Sprintf(
		"The user asked: %q\nThe answer to their question is the number %d.\n"+
			"Reply to the user with this number in a natural sentence.",
		query, count)
}

// ForData asks the model to explain fetched records. Collections should
// come back as a markdown table; the JSON origin of the data must not
// leak into the reply.
func ForData(query string, data any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user asked: %q\n", query)
	b.WriteString("The following data answers their question:\n\n")
	b.WriteString(renderData(data))
	b.WriteString("\n\nExplain this data to the user in a clear, friendly reply.\n")
	b.WriteString("If there are multiple records, present them as a markdown table.\n")
	b.WriteString("Do not mention that the data came from an API or show raw JSON.")
	return b.String()
}

// ForPlan asks the model to emit a tool plan as a bare JSON array.
// catalog is the rendered tool registry.
func ForPlan(query string, catalog string) string {
	var b strings.Builder
	b.WriteString("You can call the following tools:\n\n")
	b.WriteString(catalog)
	b.WriteString("\n\nThe user asked: ")
	fmt.Fprintf(&b, "%q\n\n", query)
	b.WriteString(`Produce a plan as a JSON array of steps, in execution order. Each step:
  {"tool": "<tool name>", "params": {...}, "saveAs": "<variable name>"}
A step may use the result of an earlier step by passing "{{variable}}" as a
parameter value. Use only the tools listed above. Respond with the JSON array
and nothing else.`)
	return b.String()
}

// ForPlanAnswer asks the model to synthesize the final reply from the
// executed plan's results.
func ForPlanAnswer(query string, results map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user asked: %q\n", query)
	b.WriteString("These results were gathered to answer the question:\n\n")
	b.WriteString(renderData(results))
	b.WriteString("\n\nWrite the final reply to the user based on these results.\n")
	b.WriteString("Do not mention tools, steps, or raw JSON.")
	return b.String()
}

func renderData(data any) string {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(encoded)
}
