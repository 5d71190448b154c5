// Package plan provides the resolution step that turns a declaration file
// into a Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Load YAML → structural validation (package decl)
//  2. Analyze the target package → functions and declared names
//  3. For each declared type:
//     - resolve the predicate or parse function, loading other packages for
//     qualified references, and check its signature
//     - suggest close names when a function is missing
//     - reject generated names that collide with existing declarations
//     - compute the call expressions and the capability set
//  4. Compute the import set of the generated file
package plan
