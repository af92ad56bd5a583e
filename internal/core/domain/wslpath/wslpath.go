/*
Package wslpath converts native Windows paths into the form seen from
inside WSL, where drive C: is mounted at /mnt/c.
*/
package wslpath

import "strings"

// Translate replaces every backslash with a forward slash and rewrites a
// leading drive letter ("C:") to its WSL mount point ("/mnt/c").
// It is a pure string transform and never touches the filesystem.
func Translate(p string) string {
	slashed := strings.ReplaceAll(p, `\`, "/")
	if len(slashed) < 2 || slashed[1] != ':' || !isASCIILetter(slashed[0]) {
		return slashed
	}
	drive := strings.ToLower(slashed[:1])
	return "/mnt/" + drive + slashed[2:]
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
