package ai

import "strings"

const (
	systemPrompt = `You are a helpful assistant that writes clear, structured summaries.
- Respect the user's instruction exactly.
- Keep the output concise and well formatted for easy editing.`

	summaryTemperature = 0.2
)

// buildUserPrompt puts the instruction first and the transcript second, each under its own label.
func buildUserPrompt(instruction, transcript string) string {
	var b strings.Builder
	b.Grow(len(instruction) + len(transcript) + 32)
	b.WriteString("Instruction:\n")
	b.WriteString(instruction)
	b.WriteString("\n\nTranscript:\n")
	b.WriteString(transcript)
	return b.String()
}
