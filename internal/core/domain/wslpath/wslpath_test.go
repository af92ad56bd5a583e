package wslpath

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "windows path with drive letter", in: `C:\Users\me\f.ts`, want: "/mnt/c/Users/me/f.ts"},
		{name: "lowercase drive letter", in: `d:\work\a.go`, want: "/mnt/d/work/a.go"},
		{name: "forward slashes with drive letter", in: "E:/proj/x.md", want: "/mnt/e/proj/x.md"},
		{name: "unix path unchanged", in: "/already/unix/path", want: "/already/unix/path"},
		{name: "backslashes without drive", in: `\\server\share\f.txt`, want: "//server/share/f.txt"},
		{name: "digit is not a drive letter", in: `1:\odd`, want: "1:/odd"},
		{name: "drive letter only", in: "C:", want: "/mnt/c"},
		{name: "colon later in path is kept", in: "/tmp/a:b", want: "/tmp/a:b"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.in); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
