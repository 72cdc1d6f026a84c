package config

import "strings"

// toScreamingSnakeCase turns a field name into its environment variable
// form: CacheURL -> CACHE_URL, redis_url -> REDIS_URL.
//
// A run of capitals is kept as a single word, so acronyms are not split
// letter by letter.
func toScreamingSnakeCase(in string) string {
	in = strings.TrimSpace(in)
	if len(in) == 0 {
		return in
	}

	sb := strings.Builder{}
	sb.Grow(len(in) + len(in)/3)

	var prev byte
	for i := 0; i < len(in); i++ {
		b := in[i]
		var next byte
		if i+1 < len(in) {
			next = in[i+1]
		}

		switch {
		case b == '_' || b == '-' || b == '.' || b == ' ':
			if sb.Len() > 0 && prev != '_' {
				sb.WriteByte('_')
				prev = '_'
			}
			continue
		case isUpper(b):
			startsWord := isLower(prev) || isDigit(prev) || (isUpper(prev) && isLower(next))
			if sb.Len() > 0 && prev != '_' && startsWord {
				sb.WriteByte('_')
			}
		case isDigit(b):
			if sb.Len() > 0 && prev != '_' && !isDigit(prev) {
				sb.WriteByte('_')
			}
		case isLower(b):
			b -= 'a' - 'A'
		}

		sb.WriteByte(b)
		prev = in[i]
	}

	return strings.TrimSuffix(sb.String(), "_")
}

func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }
func isLower(b byte) bool { return 'a' <= b && b <= 'z' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
