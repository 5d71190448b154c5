// Package decl provides the YAML schema, parsing, defaults and structural
// validation of newstr declaration files.
//
// A declaration file lists the validated string types to generate for one
// Go package:
//
//	version: "1"
//	package: identifiers      # optional, taken from the analysed package
//	output: newstr_gen.go     # optional
//	runtime: newstr           # optional, import path of the runtime package
//	types:
//	  - name: Identifier
//	    predicate: isIdentifierValue   # func(string) bool
//	    derive: [json, yaml, sql]
//	  - name: OnlyUpperCase
//	    parse: parseUppercaseOnly      # func(string) (string, error)
//	  - name: Integer
//	    regexp: '^[0-9]+$'
//	  - name: ShortCode
//	    expr: 'len(value) == 6'
//	    derive: text
//	  - name: ValidUTF8
//	    predicate: unicode/utf8.ValidString
//
// # Strategies
//
// Exactly one of predicate, parse, regexp or expr must be set. Function
// references are either names declared in the target package or
// "import/path.Func" for functions of another package.
//
// # Capabilities
//
// derive accepts a single name or a list: text, json, yaml, sql. json is an
// alias of text, since encoding/json uses encoding.TextMarshaler.
package decl
