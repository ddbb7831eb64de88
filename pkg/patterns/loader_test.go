package patterns

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLexiconFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write lexicon file: %v", err)
	}
	return path
}

func TestLoadLexiconContextOverrides(t *testing.T) {
	path := writeLexiconFile(t, `
account_context: ["khata"]
phone_context: ["ring"]
identity_context: ["pehchaan"]
email_context: ["mailbox"]
`)
	l, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}

	cases := []struct {
		name string
		got  []string
		want string
	}{
		{"account", l.AccountContext, "khata"},
		{"phone", l.PhoneContext, "ring"},
		{"identity", l.IdentityContext, "pehchaan"},
		{"email", l.EmailContext, "mailbox"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.got) != 1 || tc.got[0] != tc.want {
				t.Errorf("%s context = %v, want [%s]", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestLoadLexiconExtendsAndReplaces(t *testing.T) {
	path := writeLexiconFile(t, `
keywords_extra: ["chakma"]
handle_suffixes_extra: ["newpay"]
`)
	l, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon failed: %v", err)
	}

	defaults := DefaultLexicon()
	if len(l.Keywords) != len(defaults.Keywords)+1 {
		t.Errorf("keywords = %d entries, want defaults + 1", len(l.Keywords))
	}
	if !l.IsHandleSuffix("newpay") {
		t.Error("extra handle suffix not merged")
	}
	if !l.IsHandleSuffix("oksbi") {
		t.Error("default handle suffix lost by extra-merge")
	}
}

func TestLoadLexiconMissingFile(t *testing.T) {
	if _, err := LoadLexicon(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
