package typing

// IsValidIdentifier returns whether the given string would be a valid
// simple identifier for a TypeName or Namespace segment.
//
// Adapted from chai's depm.IsValidIdentifier.
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
