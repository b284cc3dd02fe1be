package service

import "strings"

const (
	promptRequiredMessage = "Prompt is required and must be a non-empty string"
	userIdRequiredMessage = "UserId is required and must be a non-empty string"
)

// validateGenerateRequest confirms prompt and userId are present, are text and
// are non-empty after trimming. Decoding into a map keeps non-string values
// (numbers, objects) distinguishable so the error can name the field. No side
// effects.
func validateGenerateRequest(body map[string]any) (string, string, error) {
	prompt, err := requireString(body, "prompt", promptRequiredMessage)
	if err != nil {
		return "", "", err
	}

	userId, err := requireString(body, "userId", userIdRequiredMessage)
	if err != nil {
		return "", "", err
	}

	return prompt, userId, nil
}

func requireString(body map[string]any, field string, message string) (string, error) {
	value, ok := body[field].(string)
	if !ok {
		return "", &ValidationError{Message: message}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Message: message}
	}

	return trimmed, nil
}
