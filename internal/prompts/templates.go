package prompts

import "fmt"

const acknowledgmentPrompt = `You are the greeting layer of a customer support assistant for an online dress shop. A deterministic pipeline handles every factual and policy decision; your ONLY job is to acknowledge the customer's message in one short, friendly sentence.

IMPORTANT RULES:
1. Do not answer the question, quote prices, or promise anything
2. Do not invent discount codes or order details
3. One sentence, no lists, no JSON

Customer message:
%s

Acknowledgment:`

// FallbackMessage is used when a request cannot be processed at all.
const FallbackMessage = "I'm sorry, I encountered an error processing your request. Please try again."

// BuildAcknowledgmentPrompt renders the acknowledgment prompt for the
// generative backends. The constraints keep the model decorative: even
// a misbehaving backend cannot inject decisions, because nothing
// downstream reads its output.
func BuildAcknowledgmentPrompt(message string) string {
	return fmt.Sprintf(acknowledgmentPrompt, message)
}
