// Package obfuscate implements the reversible transform used to mask stored
// passwords in the obfuscated credential dataset. It is a fixed ROT13/ROT5
// substitution, not cryptography: no key material, no salt, and decoding is
// its own inverse. Both the stored password and the supplied candidate are
// decoded before comparison, so the scheme only hides credentials at rest.
package obfuscate

import "strings"

// Decode applies the substitution: letters are rotated by 13 within their
// case, digits by 5. All other runes pass through unchanged. The transform
// is an involution, so Decode(Decode(s)) == s and Encode is the same
// operation.
func Decode(s string) string {
	return strings.Map(rot, s)
}

// Encode masks a plaintext string for storage. It is identical to Decode;
// the separate name exists for call-site clarity.
func Encode(s string) string {
	return strings.Map(rot, s)
}

func rot(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+13)%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+13)%26
	case r >= '0' && r <= '9':
		return '0' + (r-'0'+5)%10
	default:
		return r
	}
}
