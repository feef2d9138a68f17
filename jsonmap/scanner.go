package jsonmap

// FindString returns the index of the first top-level occurrence of end in
// data, or -1.
//
// An occurrence preceded by an odd run of backslashes is escaped and skipped.
// When zone is non-zero, every unescaped zone byte opens a nested level and the
// next end byte closes it instead of matching. Unless end is itself a quote,
// quoted strings are opaque: delimiters inside them never match.
func FindString(data string, end, zone byte) int {
	var (
		depth   int
		escaped bool
		quote   byte
	)
	quoteAware := end != '"' && end != '\''
	for i := 0; i < len(data); i++ {
		c := data[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == end:
			if depth == 0 {
				return i
			}
			depth--
		case zone != 0 && c == zone:
			depth++
		case quoteAware && (c == '"' || c == '\''):
			quote = c
		}
	}
	return -1
}

// locate is FindString returning the matched prefix.
func locate(data string, end, zone byte) (string, bool) {
	i := FindString(data, end, zone)
	if i < 0 {
		return "", false
	}
	return data[:i], true
}
