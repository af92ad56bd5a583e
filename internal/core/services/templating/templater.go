/*
Package templating expands ${...} placeholders in rule command templates.

The template is scanned once from left to right. Text produced by an
expansion is never scanned again, so a file path that happens to contain
"${file}" is emitted literally.
*/
package templating

import (
	"os"
	"strings"
)

const envPrefix = "env."

// Vars carries every value a template can refer to.
type Vars struct {
	File          string
	WorkspaceRoot string
	// RelativeRoot is the root ${relativeFile} is computed against when it
	// differs from WorkspaceRoot, as for translated paths.
	RelativeRoot string
	Cwd          string
	Env          map[string]string
}

// ExpandTemplate expands template for filePath. The process working
// directory is captured once for the whole expansion.
func ExpandTemplate(template, filePath, workspaceRoot string, env map[string]string) string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return Expand(template, Vars{
		File:          filePath,
		WorkspaceRoot: workspaceRoot,
		Cwd:           cwd,
		Env:           env,
	})
}

// Expand substitutes every recognised placeholder in template using vars.
// Unknown placeholders are left as they are; unset environment variables
// expand to the empty string.
func Expand(template string, vars Vars) string {
	if !strings.Contains(template, "${") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])

		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			b.WriteString(rest[start:])
			break
		}
		name := rest[start+2 : start+2+end]

		value, ok := lookup(name, vars)
		if !ok {
			// Not a placeholder; keep the "$" and rescan from the next byte so
			// a placeholder nested after it is still found.
			b.WriteByte('$')
			rest = rest[start+1:]
			continue
		}
		b.WriteString(value)
		rest = rest[start+2+end+1:]
	}
	return b.String()
}

func lookup(name string, vars Vars) (string, bool) {
	switch name {
	case "file":
		return vars.File, true
	case "relativeFile":
		root := vars.RelativeRoot
		if root == "" {
			root = vars.WorkspaceRoot
		}
		return relativeFile(vars.File, root), true
	case "workspaceRoot":
		return vars.WorkspaceRoot, true
	case "fileBasename":
		return basename(vars.File), true
	case "fileDirname":
		return dirname(vars.File), true
	case "fileExtname":
		return extname(vars.File), true
	case "fileBasenameNoExt":
		base := basename(vars.File)
		return strings.TrimSuffix(base, extname(vars.File)), true
	case "cwd":
		return vars.Cwd, true
	}

	if envName, found := strings.CutPrefix(name, envPrefix); found && envName != "" {
		return vars.Env[envName], true
	}
	return "", false
}
