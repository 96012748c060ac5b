package gitdiff

import (
	"reflect"
	"testing"
)

const sampleDiff = `diff --git a/auth/login.py b/auth/login.py
index 1234567..abcdefg 100644
--- a/auth/login.py
+++ b/auth/login.py
@@ -1,6 +1,10 @@
 from flask import request, jsonify
 from werkzeug.security import check_password_hash
+from .oauth import OAuth2Provider

 def login():
     username = request.json.get('username')
-    password = request.json.get('pass')
+    password = request.json.get('password')
+
+    oauth_provider = OAuth2Provider()
     return jsonify({'status': 'success'})
diff --git a/auth/oauth.py b/auth/oauth.py
new file mode 100644
index 0000000..f00ba44
--- /dev/null
+++ b/auth/oauth.py
@@ -0,0 +1,2 @@
+class OAuth2Provider:
+    pass
`

func TestSummarize(t *testing.T) {
	expected := []FileSummary{
		{Path: "auth/login.py", Additions: 4, Deletions: 1},
		{Path: "auth/oauth.py", Additions: 2, Deletions: 0, IsNewFile: true},
	}

	got := Summarize(sampleDiff)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Summarize() = %+v; want %+v", got, expected)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(""); len(got) != 0 {
		t.Errorf("Summarize(\"\") = %+v; want no summaries", got)
	}
}

func TestPaths(t *testing.T) {
	summaries := Summarize(sampleDiff)

	expected := []string{"auth/login.py", "auth/oauth.py"}
	if got := Paths(summaries); !reflect.DeepEqual(got, expected) {
		t.Errorf("Paths() = %v; want %v", got, expected)
	}
}

func TestStripGitDiffPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"b/cmd/main.go", "cmd/main.go"},
		{"w/cmd/main.go", "cmd/main.go"},
		{"cmd/main.go", "cmd/main.go"},
		{"b/", "b/"},
	}

	for _, test := range tests {
		if got := stripGitDiffPrefix(test.input); got != test.expected {
			t.Errorf("stripGitDiffPrefix(%q) = %q; want %q", test.input, got, test.expected)
		}
	}
}
