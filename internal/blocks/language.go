package blocks

import "strings"

// CodeLanguage identifies the language of a Code block. The zero value is PlainText.
type CodeLanguage int

const (
	PlainText CodeLanguage = iota
	Abap
	Arduino
	Bash
	Basic
	C
	Clojure
	Coffeescript
	CPlusPlus
	CSharp
	Css
	Dart
	Diff
	Docker
	Elixir
	Elm
	Erlang
	Flow
	Fortran
	FSharp
	Gherkin
	Glsl
	Go
	Graphql
	Groovy
	Haskell
	Html
	Java
	Javascript
	Json
	Julia
	Kotlin
	Latex
	Less
	Lisp
	Livescript
	Lua
	Makefile
	Markdown
	Markup
	Matlab
	Mermaid
	Nix
	ObjectiveC
	Ocaml
	Pascal
	Perl
	Php
	Powershell
	Prolog
	Protobuf
	Python
	R
	Reason
	Ruby
	Rust
	Sass
	Scala
	Scheme
	Scss
	Shell
	Sql
	Swift
	Typescript
	VbNet
	Verilog
	Vhdl
	VisualBasic
	Webassembly
	Xml
	Yaml
)

type languageNames struct {
	display string // fence form written by the decoder
	api     string // remote schema name, also the accepted fence tag
}

var languageTable = [...]languageNames{
	PlainText:    {"PlainText", "plain text"},
	Abap:         {"Abap", "abap"},
	Arduino:      {"Arduino", "arduino"},
	Bash:         {"Bash", "bash"},
	Basic:        {"Basic", "basic"},
	C:            {"C", "c"},
	Clojure:      {"Clojure", "clojure"},
	Coffeescript: {"Coffeescript", "coffeescript"},
	CPlusPlus:    {"CPlusPlus", "c++"},
	CSharp:       {"CSharp", "csharp"},
	Css:          {"Css", "css"},
	Dart:         {"Dart", "dart"},
	Diff:         {"Diff", "diff"},
	Docker:       {"Docker", "docker"},
	Elixir:       {"Elixir", "elixir"},
	Elm:          {"Elm", "elm"},
	Erlang:       {"Erlang", "erlang"},
	Flow:         {"Flow", "flow"},
	Fortran:      {"Fortran", "fortran"},
	FSharp:       {"FSharp", "fsharp"},
	Gherkin:      {"Gherkin", "gherkin"},
	Glsl:         {"Glsl", "glsl"},
	Go:           {"Go", "go"},
	Graphql:      {"Graphql", "graphql"},
	Groovy:       {"Groovy", "groovy"},
	Haskell:      {"Haskell", "haskell"},
	Html:         {"Html", "html"},
	Java:         {"Java", "java"},
	Javascript:   {"Javascript", "javascript"},
	Json:         {"Json", "json"},
	Julia:        {"Julia", "julia"},
	Kotlin:       {"Kotlin", "kotlin"},
	Latex:        {"Latex", "latex"},
	Less:         {"Less", "less"},
	Lisp:         {"Lisp", "lisp"},
	Livescript:   {"Livescript", "livescript"},
	Lua:          {"Lua", "lua"},
	Makefile:     {"Makefile", "makefile"},
	Markdown:     {"Markdown", "markdown"},
	Markup:       {"Markup", "markup"},
	Matlab:       {"Matlab", "matlab"},
	Mermaid:      {"Mermaid", "mermaid"},
	Nix:          {"Nix", "nix"},
	ObjectiveC:   {"ObjectiveC", "objective-c"},
	Ocaml:        {"Ocaml", "ocaml"},
	Pascal:       {"Pascal", "pascal"},
	Perl:         {"Perl", "perl"},
	Php:          {"Php", "php"},
	Powershell:   {"Powershell", "powershell"},
	Prolog:       {"Prolog", "prolog"},
	Protobuf:     {"Protobuf", "protobuf"},
	Python:       {"Python", "python"},
	R:            {"R", "r"},
	Reason:       {"Reason", "reason"},
	Ruby:         {"Ruby", "ruby"},
	Rust:         {"Rust", "rust"},
	Sass:         {"Sass", "sass"},
	Scala:        {"Scala", "scala"},
	Scheme:       {"Scheme", "scheme"},
	Scss:         {"Scss", "scss"},
	Shell:        {"Shell", "shell"},
	Sql:          {"Sql", "sql"},
	Swift:        {"Swift", "swift"},
	Typescript:   {"Typescript", "typescript"},
	VbNet:        {"VbNet", "vbnet"},
	Verilog:      {"Verilog", "verilog"},
	Vhdl:         {"Vhdl", "vhdl"},
	VisualBasic:  {"VisualBasic", "visual basic"},
	Webassembly:  {"Webassembly", "webassembly"},
	Xml:          {"Xml", "xml"},
	Yaml:         {"Yaml", "yaml"},
}

var languagesByAPIName = func() map[string]CodeLanguage {
	m := make(map[string]CodeLanguage, len(languageTable))
	for i, names := range languageTable {
		m[names.api] = CodeLanguage(i)
	}
	return m
}()

// LookupCodeLanguage maps a fence tag such as "rust" or "C++" to its
// language. Unknown tags map to PlainText.
func LookupCodeLanguage(tag string) CodeLanguage {
	if lang, ok := languagesByAPIName[strings.ToLower(tag)]; ok {
		return lang
	}
	return PlainText
}

// ParseCodeLanguageAPIName maps a remote schema name back to a language
func ParseCodeLanguageAPIName(name string) (CodeLanguage, bool) {
	lang, ok := languagesByAPIName[name]
	return lang, ok
}

// String returns the display form written after a decoded fence
func (l CodeLanguage) String() string {
	if !l.valid() {
		return languageTable[PlainText].display
	}
	return languageTable[l].display
}

// APIName returns the remote schema name
func (l CodeLanguage) APIName() string {
	if !l.valid() {
		return languageTable[PlainText].api
	}
	return languageTable[l].api
}

func (l CodeLanguage) valid() bool {
	return l >= 0 && int(l) < len(languageTable)
}

// CodeLanguages returns every known language in declaration order
func CodeLanguages() []CodeLanguage {
	out := make([]CodeLanguage, len(languageTable))
	for i := range languageTable {
		out[i] = CodeLanguage(i)
	}
	return out
}
