package executor

// LanguageConfig maps an API-level language name to what the Piston-style
// runner expects, plus the source file extension it compiles.
type LanguageConfig struct {
	Language  string
	Version   string
	Extension string
}

var languages = map[string]LanguageConfig{
	"javascript": {Language: "javascript", Version: "18.15.0", Extension: "js"},
	"python":     {Language: "python", Version: "3.10.0", Extension: "py"},
	"java":       {Language: "java", Version: "15.0.2", Extension: "java"},
	"cpp":        {Language: "c++", Version: "10.2.0", Extension: "cpp"},
	"c":          {Language: "c", Version: "10.2.0", Extension: "c"},
}

func LookupLanguage(name string) (LanguageConfig, bool) {
	cfg, ok := languages[name]
	return cfg, ok
}
