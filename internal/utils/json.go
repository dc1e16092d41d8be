// Package utils holds small helpers for handling LLM output.
package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled regexes for JSON repair (compiled once, used many times).
// These cover the syntax errors small instruct models most often make;
// anything they cannot fix is rejected by the caller's schema check.
var (
	// Fix trailing commas before closing brace/bracket
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

	// Fix single quotes for object keys: {'key': -> {"key":
	singleQuoteKeyRegex = regexp.MustCompile(`([{,]\s*)'(\w+)'(\s*:)`)

	// Fix single quotes for string values after colon: : 'value' -> : "value"
	singleQuoteValueRegex = regexp.MustCompile(`(:\s*)'((?:[^'\\]|\\.)*)'(\s*[,}\]])`)

	// Fix missing comma after value before new key: "value" "key": -> "value", "key":
	missingCommaRegex = regexp.MustCompile(`(["\d}\]]|true|false|null)\s*\n\s*("[\w][^"]*"\s*:)`)
)

// ExtractAndParseJSON extracts JSON from an LLM response and unmarshals it.
// Uses stream-based decoding to robustly ignore trailing text and repairs
// common model syntax errors before giving up.
func ExtractAndParseJSON[T any](response string) (T, error) {
	var result T

	cleaned := cleanResponse(response)
	if cleaned == "" {
		return result, fmt.Errorf("no JSON found in response")
	}

	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		return result, fmt.Errorf("no JSON start ({ or [) found")
	}

	// Decode a single JSON value and ignore whatever follows it.
	// This handles cases like: {"a":1} some trailing prose.
	jsonPart := cleaned[idx:]
	decoder := json.NewDecoder(strings.NewReader(jsonPart))
	if err := decoder.Decode(&result); err != nil {
		repaired := repairJSON(jsonPart)
		if repaired != jsonPart {
			dec2 := json.NewDecoder(strings.NewReader(repaired))
			if err2 := dec2.Decode(&result); err2 == nil {
				return result, nil
			}
		}
		return result, fmt.Errorf("parse JSON: %w", err)
	}

	return result, nil
}

// repairJSON attempts to fix common JSON syntax errors from LLMs:
// raw control characters inside strings, missing/trailing commas,
// single-quoted keys and values, truncated output.
func repairJSON(input string) string {
	result := sanitizeControlChars(input)

	result = missingCommaRegex.ReplaceAllString(result, `$1, $2`)
	result = trailingCommaRegex.ReplaceAllString(result, `$1`)
	result = singleQuoteKeyRegex.ReplaceAllString(result, `$1"$2"$3`)

	result = singleQuoteValueRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := singleQuoteValueRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		value := strings.ReplaceAll(parts[2], `\'`, `'`)
		value = strings.ReplaceAll(value, `"`, `\"`)
		return parts[1] + `"` + value + `"` + parts[3]
	})

	return closeTruncatedJSON(result)
}

// sanitizeControlChars escapes literal control characters inside JSON
// strings. Models often emit raw tabs and newlines, which are invalid.
func sanitizeControlChars(input string) string {
	var result strings.Builder
	result.Grow(len(input))

	inString := false
	escaped := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		if escaped {
			result.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			result.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			result.WriteByte(c)
			continue
		}

		if inString && c < 0x20 {
			switch c {
			case '\t':
				result.WriteString(`\t`)
			case '\n':
				result.WriteString(`\n`)
			case '\r':
				result.WriteString(`\r`)
			default:
				result.WriteString(fmt.Sprintf(`\u%04x`, c))
			}
			continue
		}

		result.WriteByte(c)
	}

	return result.String()
}

// closeTruncatedJSON closes a string and any open braces/brackets when the
// output was cut off mid-value, common when the token limit is hit.
func closeTruncatedJSON(input string) string {
	quoteCount := 0
	escaped := false
	for _, c := range input {
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			quoteCount++
		}
	}
	if quoteCount%2 != 0 {
		input += `"`
	}

	for i := strings.Count(input, "[") - strings.Count(input, "]"); i > 0; i-- {
		input += "]"
	}
	for i := strings.Count(input, "{") - strings.Count(input, "}"); i > 0; i-- {
		input += "}"
	}

	return input
}

// cleanResponse strips markdown code fences around the reply body.
func cleanResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")

	return strings.TrimSpace(response)
}
