package mim

import "golang.org/x/text/unicode/norm"

// normalizeCommit applies Unicode NFC normalization to text moving from
// preedit into committed output. Bengali and other Indic scripts compose
// combining marks and viramas, and a MIM rule author's insert/commit
// sequence can legitimately produce code points in a decomposed or
// over-sequenced order; normalizing once at the commit boundary keeps the
// externally observed committed text canonical without altering the
// content a well-formed rule set intends to produce.
func normalizeCommit(s string) string {
	return norm.NFC.String(s)
}
