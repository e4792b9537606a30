package enhancer

import "fmt"

const systemPrompt = "You are a prompt-engineering expert. You turn short product ideas " +
	"into detailed, actionable build briefs that a development team can start from directly."

const userPromptFormat = `Enhance the following app idea into a complete build prompt.

Idea: %s
Target platform: %s

Respond with:
1. A concise project title.
2. A two-bullet summary of the product goals.
3. A detailed build prompt for a %s covering the recommended stack, required APIs and integrations, performance targets, and edge cases to handle.`

func buildUserPrompt(req ValidatedRequest) string {
	label := req.AppType.Label()
	return fmt.Sprintf(userPromptFormat, req.Idea, label, label)
}
