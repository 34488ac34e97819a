package strategy

import "fmt"

const (
	// SystemInstruction is sent with every generation call.
	SystemInstruction = "You are a minimalist, brutalist design strategist. You speak in concise, high-value terms."

	// FallbackText is stored when the provider answers with empty text.
	FallbackText = "Unable to generate strategy at this time."

	// OfflineMessage is shown for every failure, whatever the cause.
	OfflineMessage = "System Offline. Please try again later."
)

const promptTemplate = `Act as a senior digital strategist for a high-end design agency.
Create a brief, high-impact strategic outline for the following client request.
Focus on "Objective", "Approach", and "Key Deliverables".
Keep it punchy, professional, and abstract (max 150 words).

Client Request: %s`

// BuildPrompt wraps a client brief in the strategist template.
func BuildPrompt(brief string) string {
	return fmt.Sprintf(promptTemplate, brief)
}
