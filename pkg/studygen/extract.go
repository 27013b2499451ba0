package studygen

import "strings"

// ExtractJSON strips a single level of markdown code-fencing from an LLM
// response. It looks for a ```json fence first, then a generic ``` fence,
// and otherwise returns the trimmed response as-is. Models regularly wrap
// their output this way despite being told not to.
func ExtractJSON(response string) string {
	if idx := strings.Index(response, "```json"); idx != -1 {
		rest := response[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	if idx := strings.Index(response, "```"); idx != -1 {
		rest := response[idx+len("```"):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	return strings.TrimSpace(response)
}
