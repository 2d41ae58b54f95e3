package smallargs

func prependSpace(s string) string {
	if s != "" {
		return " " + s
	}
	return ""
}
