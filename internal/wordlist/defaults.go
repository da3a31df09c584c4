package wordlist

// defaultWords is the built-in programming vocabulary used when no word list
// file is installed.
var defaultWords = []string{
	"variable", "function", "loop", "class", "object", "string", "list",
	"dictionary", "tuple", "set", "import", "module", "package", "exception",
	"try", "except", "return", "if", "else", "elif", "while", "for", "break",
	"continue", "pass", "lambda", "decorator", "generator", "yield",
	"recursion", "argument", "parameter", "scope", "namespace", "global",
	"local", "assert", "true", "false", "none", "identity", "equality",
	"operator", "importerror", "syntaxerror", "indentation", "comprehension",
	"slicing", "map", "filter",
}

// Default returns a copy of the built-in word list.
func Default() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}
