package semgrep

import (
	"regexp"
	"strings"
)

var (
	pyFromImportRe = regexp.MustCompile(`^\^from\s+(\S+)\s+import`)
	jsFromRe       = regexp.MustCompile(`from \['"\]([^[]+)\['"\]`)
	jsRequireRe    = regexp.MustCompile(`require\\\(\['"\]([^[]+)\['"\]`)
	goQuotedPathRe = regexp.MustCompile(`"([^"]+)"`)
)

// Translate converts a detection regex into the native Semgrep pattern for
// the given language. It is a fixed catalogue of known idioms, not a regex
// compiler; the second return is false when no translation exists, in which
// case the caller falls back to emitting the raw regex as pattern-regex.
func Translate(pattern, language string) (string, bool) {
	switch language {
	case "python":
		if strings.HasPrefix(pattern, "^import ") {
			return "import " + pattern[len("^import "):], true
		}
		if strings.HasPrefix(pattern, "^from ") && strings.Contains(pattern, "import") {
			if m := pyFromImportRe.FindStringSubmatch(pattern); m != nil {
				return "from " + m[1] + " import $X", true
			}
		}
		// Alternations need an externally supplied pattern-either, not a
		// single translated pattern.
		if strings.Contains(pattern, "|") {
			return "", false
		}
		if strings.HasSuffix(pattern, `\(`) {
			return pattern[:len(pattern)-2] + "(...)", true
		}

	case "javascript", "typescript":
		if strings.Contains(pattern, `from ['"]`) {
			if m := jsFromRe.FindStringSubmatch(pattern); m != nil {
				return `import $X from "` + m[1] + `"`, true
			}
		}
		if strings.Contains(pattern, `require\(['"]`) {
			if m := jsRequireRe.FindStringSubmatch(pattern); m != nil {
				return `require("` + m[1] + `")`, true
			}
		}
		if strings.HasPrefix(pattern, "new ") && strings.HasSuffix(pattern, `\(`) {
			return "new " + pattern[len("new "):len(pattern)-2] + "(...)", true
		}

	case "go":
		if strings.Contains(pattern, "import") {
			if m := goQuotedPathRe.FindStringSubmatch(pattern); m != nil {
				return `import "` + m[1] + `"`, true
			}
		}
	}

	return "", false
}
