package envfile

import (
	"os"
	"strings"

	serrors "github.com/sealedenv/sealed/internal/errors"
)

// Entry is one binding line as it appears in the file, in file order.
type Entry struct {
	Key   string
	Value string
}

// binding is a parsed binding line. leadingWS and export are kept so a
// rewrite can reproduce the line's original shape.
type binding struct {
	leadingWS string
	export    bool
	key       string
	value     string
}

// Read returns the value of the last binding of varName in the file, and
// whether any binding was found. The value is returned verbatim with no
// unquoting.
func Read(path, varName string) (string, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false, serrors.EnvFilef("failed to read env file %s: %v", path, err)
	}

	value := ""
	found := false
	for _, line := range splitLines(string(content)) {
		if b, ok := parseBinding(line); ok && b.key == varName {
			value = b.value
			found = true
		}
	}

	return value, found, nil
}

// Upsert sets varName to value in the file, rewriting every existing
// binding of varName in place (keeping each line's leading whitespace and
// export prefix) or appending a new binding if none exists. A missing
// file is treated as empty and created. The result is written with LF
// line endings and a single trailing newline; lines not bound to varName
// are emitted exactly as read.
func Upsert(path, varName, value string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return serrors.EnvFilef("failed to read env file %s: %v", path, err)
		}
		content = nil
	}

	lines := splitLines(string(content))
	replaced := false

	for i, line := range lines {
		b, ok := parseBinding(line)
		if !ok || b.key != varName {
			continue
		}
		var sb strings.Builder
		sb.WriteString(b.leadingWS)
		if b.export {
			sb.WriteString("export ")
		}
		sb.WriteString(varName)
		sb.WriteString("=")
		sb.WriteString(value)
		lines[i] = sb.String()
		replaced = true
	}

	if !replaced {
		lines = append(lines, varName+"="+value)
	}

	out := strings.Join(lines, "\n") + "\n"

	// 0600 applies only when the file is created; an existing file keeps
	// its mode.
	if err := os.WriteFile(path, []byte(out), 0600); err != nil {
		return serrors.EnvFilef("failed to write env file %s: %v", path, err)
	}

	return nil
}

// Entries returns every binding in the file in order, duplicates
// included. Comment and blank lines are skipped.
func Entries(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.EnvFilef("failed to read env file %s: %v", path, err)
	}

	var entries []Entry
	for _, line := range splitLines(string(content)) {
		if b, ok := parseBinding(line); ok {
			entries = append(entries, Entry{Key: b.key, Value: b.value})
		}
	}

	return entries, nil
}

// splitLines splits content on LF, dropping the empty element a trailing
// newline produces. CR bytes stay attached to their lines so untouched
// CRLF lines survive a rewrite byte-identical.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseBinding parses a single line as [ws]*(export )?KEY=VALUE. A line
// that is blank or a comment after left-trimming, has no '=', or has an
// empty key is not a binding. A trailing CR is stripped before parsing
// but never from the raw line.
func parseBinding(line string) (binding, bool) {
	raw := strings.TrimSuffix(line, "\r")

	trimmed := strings.TrimLeft(raw, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return binding{}, false
	}

	leadingWS := raw[:len(raw)-len(trimmed)]

	rest := trimmed
	export := false
	if after, ok := strings.CutPrefix(rest, "export "); ok {
		export = true
		rest = after
	}

	eq := strings.Index(rest, "=")
	if eq < 0 {
		return binding{}, false
	}

	key := strings.TrimRight(rest[:eq], " \t")
	if key == "" {
		return binding{}, false
	}

	return binding{
		leadingWS: leadingWS,
		export:    export,
		key:       key,
		value:     rest[eq+1:],
	}, true
}
