// Package envfile parses and patches .env files while preserving comments,
// blank lines, and key order. The voice agent loads .env at startup, so the
// wizard must be able to update values without reformatting the file.
package envfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

// Parse reads .env content into a key-value map.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// Patch merges updates into .env content. Existing keys are rewritten in
// place; new keys are appended. Empty update values are skipped so the wizard
// never blanks out a credential the user chose not to re-enter.
func Patch(content string, updates map[string]string) string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	lineForKey := make(map[string]int)
	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err != nil || !ok {
			continue
		}
		if _, seen := lineForKey[key]; !seen {
			lineForKey[key] = i
		}
	}

	updated := make(map[string]bool)
	for key, value := range updates {
		if value == "" {
			continue
		}
		entry := fmt.Sprintf("%s=%s", key, encodeValue(value))
		if idx, ok := lineForKey[key]; ok {
			lines[idx] = entry
		} else {
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			lines = append(lines, entry)
			lineForKey[key] = len(lines) - 1
		}
		updated[key] = true
	}
	if len(updated) == 0 {
		return strings.Join(lines, "\n")
	}

	// Drop later duplicates of updated keys so the rewritten first
	// occurrence is the one the agent loads.
	filtered := make([]string, 0, len(lines))
	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err == nil && ok && updated[key] && lineForKey[key] != i {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.Join(filtered, "\n")
}

// parseLine parses a single .env line and returns key/value when present.
// Blank lines and comments report ok=false with no error.
func parseLine(line string) (key string, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	if rest, found := strings.CutPrefix(trimmed, "export "); found {
		trimmed = strings.TrimSpace(rest)
	}
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	key = strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	value = strings.TrimSpace(trimmed[idx+1:])
	switch {
	case strings.HasPrefix(value, `"`):
		value, err = parseQuotedValue(value, '"')
	case strings.HasPrefix(value, `'`):
		value, err = parseQuotedValue(value, '\'')
	}
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

// parseQuotedValue parses a quoted value and validates trailing content.
// Double-quoted values honor backslash escapes; single-quoted values are literal.
func parseQuotedValue(raw string, quote byte) (string, error) {
	closing := -1
	escaped := false
	for i := 1; i < len(raw); i++ {
		if quote == '"' && escaped {
			escaped = false
			continue
		}
		switch raw[i] {
		case '\\':
			if quote == '"' {
				escaped = true
			}
		case quote:
			closing = i
		}
		if closing >= 0 {
			break
		}
	}
	if closing < 0 {
		return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
	}
	suffix := strings.TrimSpace(raw[closing+1:])
	if suffix != "" && !strings.HasPrefix(suffix, "#") {
		return "", fmt.Errorf(messages.EnvfileInvalidQuotedSuffix)
	}
	payload := raw[1:closing]
	if quote == '"' {
		payload = unescape(payload)
	}
	return payload, nil
}

// unescape decodes the escape forms produced by encodeValue.
func unescape(escaped string) string {
	var b strings.Builder
	b.Grow(len(escaped))
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '\\' && i+1 < len(escaped) {
			switch escaped[i+1] {
			case '\\', '"':
				b.WriteByte(escaped[i+1])
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			}
		}
		b.WriteByte(escaped[i])
	}
	return b.String()
}

// encodeValue escapes and quotes a value when required for .env formatting.
func encodeValue(val string) string {
	if !strings.ContainsAny(val, " \t#\n\r\"") {
		return val
	}
	val = strings.ReplaceAll(val, "\\", "\\\\")
	val = strings.ReplaceAll(val, "\"", "\\\"")
	val = strings.ReplaceAll(val, "\n", "\\n")
	val = strings.ReplaceAll(val, "\r", "\\r")
	return `"` + val + `"`
}
