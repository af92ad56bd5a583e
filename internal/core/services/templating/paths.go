package templating

import "strings"

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func lastSeparator(p string) int {
	return strings.LastIndexAny(p, `/\`)
}

// trimTrailingSeparators keeps a lone root separator intact.
func trimTrailingSeparators(p string) string {
	for len(p) > 1 && isSeparator(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	return p
}

func basename(p string) string {
	p = trimTrailingSeparators(p)
	if len(p) == 1 && isSeparator(p[0]) {
		return ""
	}
	return p[lastSeparator(p)+1:]
}

func dirname(p string) string {
	if p == "" {
		return "."
	}
	p = trimTrailingSeparators(p)
	i := lastSeparator(p)
	switch {
	case i < 0:
		if isDriveRoot(p) {
			return p
		}
		return "."
	case i == 0:
		return p[:1]
	}
	dir := p[:i]
	if isDriveRoot(dir) {
		// "C:\file" lives in "C:\", not "C:".
		return p[:i+1]
	}
	return dir
}

// extname returns the extension including its dot. Dotfiles such as
// ".bashrc" have no extension.
func extname(p string) string {
	base := basename(p)
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return ""
	}
	return base[dot:]
}

func isDriveRoot(p string) bool {
	return len(p) == 2 && p[1] == ':' &&
		((p[0] >= 'a' && p[0] <= 'z') || (p[0] >= 'A' && p[0] <= 'Z'))
}

// relativeFile strips root from p and prefixes the remainder with "./".
// Paths outside root, or an empty root, are returned unchanged.
func relativeFile(p, root string) string {
	if root == "" || !strings.HasPrefix(p, root) {
		return p
	}
	rest := p[len(root):]
	if rest != "" && !isSeparator(rest[0]) && !isSeparator(root[len(root)-1]) {
		// "/proj2/x" is not inside "/proj".
		return p
	}
	rest = strings.TrimLeft(rest, `/\`)
	if rest == "" {
		return "."
	}
	return "./" + rest
}
