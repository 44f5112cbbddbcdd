package utils

import "strings"

// CleanJSONResponse removes markdown code fences and surrounding whitespace
// from a model response so it can be parsed as JSON. Fences are tolerated
// but never required.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	return strings.TrimSpace(response)
}
