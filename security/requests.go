package security

func ExtractBearerToken(header string) string {
	const prefix = "Bearer "
	prefixLen := len(prefix)
	if len(header) > prefixLen && header[:prefixLen] == prefix {
		return header[prefixLen:]
	}
	return ""
}
