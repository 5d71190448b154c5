// Package newstr provides validated string newtypes.
//
// A validated string wraps a text value that is checked once, when the value
// is constructed, and never changes afterwards. Validity is described by a
// stateless policy type:
//
//   - predicate mode: the policy implements [Predicate] and is wrapped with
//     [Checked]; accepted text is stored verbatim.
//   - parse mode: the policy implements [Policy] directly; the text returned
//     by Parse is stored, so a policy may normalize its input.
//
// Both modes produce a [String] with the same behaviour: comparison, hashing,
// display and plain-text round trips through encoding.TextMarshaler, YAML and
// database/sql.
//
// # Example
//
//	type identifier struct{}
//
//	func (identifier) IsValid(s string) bool {
//		if s == "" {
//			return false
//		}
//		for _, r := range s {
//			if r != '_' && !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
//				return false
//			}
//		}
//		return true
//	}
//
//	type Identifier = newstr.String[newstr.Checked[identifier]]
//
//	id, err := newstr.New[newstr.Checked[identifier]]("hello_world")
//
// Types that need their own name and method set can be generated instead with
// cmd/newstr-gen, which emits the same contract as plain Go code.
package newstr
