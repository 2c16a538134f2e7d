package safety

import "testing"

func TestSafeDeclarationsOnly(t *testing.T) {
	src := `// a comment
export const a = 1;
import { b } from './b';
type T = string;
function f() {}
class C {}
`
	if HasPossibleSideEffects(src) {
		t.Error("expected source with only declarations to be safe")
	}
}

func TestTopLevelCallIsRisky(t *testing.T) {
	src := `export const a = 1;
console.log(a);
`
	if !HasPossibleSideEffects(src) {
		t.Error("expected top-level call expression to be risky")
	}
}

func TestBlockCommentLinesIgnored(t *testing.T) {
	src := `/* header
 * continued
 */
export const a = 1;
`
	if HasPossibleSideEffects(src) {
		t.Error("expected block comment lines to be ignored")
	}
}

func TestReassignmentIsRisky(t *testing.T) {
	src := `export let a = 1;
a = 2;
`
	if !HasPossibleSideEffects(src) {
		t.Error("expected top-level reassignment to be risky")
	}
}
