package llm

// BuildChatPrompt frames a free-form user message for the text providers.
func BuildChatPrompt(message string) string {
	return "You are a garden architect. Reply briefly to: " + message
}
