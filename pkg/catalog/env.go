package catalog

import (
	"os"
	"regexp"
	"strings"
)

// envRefPattern matches {{env:VAR_NAME}}
var envRefPattern = regexp.MustCompile(`\{\{\s*env:([^}]+)\}\}`)

// ResolveEnvRefs replaces {{env:VAR}} references with values from the process
// environment. Unset variables are left as written so the gap stays visible.
func ResolveEnvRefs(text string) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	return envRefPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := envRefPattern.FindStringSubmatch(match)
		name := strings.TrimSpace(sub[1])
		if val, ok := os.LookupEnv(name); ok && val != "" {
			return val
		}
		return match
	})
}
