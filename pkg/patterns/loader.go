package patterns

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// lexiconFile is the on-disk override shape. Every field is optional;
// absent fields keep the built-in defaults, present fields replace them
// or (for the *_extra lists) extend them.
type lexiconFile struct {
	Keywords        []string          `yaml:"keywords"`
	KeywordsExtra   []string          `yaml:"keywords_extra"`
	HandleSuffixes  []string          `yaml:"handle_suffixes"`
	SuffixesExtra   []string          `yaml:"handle_suffixes_extra"`
	BankAliases     map[string]string `yaml:"bank_aliases"`
	RoutingPrefixes map[string]string `yaml:"routing_prefixes"`
	AccountContext  []string          `yaml:"account_context"`
	PhoneContext    []string          `yaml:"phone_context"`
	IdentityContext []string          `yaml:"identity_context"`
	EmailContext    []string          `yaml:"email_context"`
	TLDs            []string          `yaml:"tlds"`
}

// LoadLexicon reads a YAML override file and merges it over the built-in
// defaults. Replacement lists swap the default wholesale; the *_extra
// lists append. The result is built and ready to install via
// SetActiveLexicon.
func LoadLexicon(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	var f lexiconFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}

	l := DefaultLexicon()
	if len(f.Keywords) > 0 {
		l.Keywords = f.Keywords
	}
	l.Keywords = append(l.Keywords, f.KeywordsExtra...)
	if len(f.HandleSuffixes) > 0 {
		l.HandleSuffixes = setOf(f.HandleSuffixes...)
	}
	for _, s := range f.SuffixesExtra {
		l.HandleSuffixes[s] = true
	}
	for k, v := range f.BankAliases {
		l.BankAliases[k] = v
	}
	for k, v := range f.RoutingPrefixes {
		l.RoutingPrefixes[k] = v
	}
	if len(f.AccountContext) > 0 {
		l.AccountContext = f.AccountContext
	}
	if len(f.PhoneContext) > 0 {
		l.PhoneContext = f.PhoneContext
	}
	if len(f.IdentityContext) > 0 {
		l.IdentityContext = f.IdentityContext
	}
	if len(f.EmailContext) > 0 {
		l.EmailContext = f.EmailContext
	}
	if len(f.TLDs) > 0 {
		l.TLDs = f.TLDs
	}
	l.Build()
	return l, nil
}

// InstallLexicon loads an override file if path is non-empty and installs
// it as the active lexicon. A missing or malformed file logs a warning and
// keeps the defaults; extraction never goes down over a bad override.
func InstallLexicon(path string) {
	if path == "" {
		return
	}
	l, err := LoadLexicon(path)
	if err != nil {
		log.Printf("[WARN] Lexicon override not applied (%v), using built-in defaults", err)
		return
	}
	SetActiveLexicon(l)
	log.Printf("[STARTUP] Lexicon override loaded from %s (%d keywords)", path, len(l.Keywords))
}
