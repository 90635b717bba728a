package services

import (
	"encoding/json"
	"strings"
)

const promptTemplate = `You are an expert data analyst.
Here is the sales data in JSON format:
%RECORDS%

Please provide a brief analysis of the data. Include the following points:
1. Which product sold the most (based on 'Jumlah')?
2. What is the total revenue from all transactions?
3. Give one insight or business recommendation based on this data.

Present the answer in JSON format.`

// BuildPrompt embeds records verbatim into the analysis instructions.
func BuildPrompt(records json.RawMessage) string {
	return strings.Replace(promptTemplate, "%RECORDS%", string(records), 1)
}

// StripCodeFences removes ```json and ``` markers anywhere in text and trims
// surrounding whitespace.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
