package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// OrDash substitutes a dash placeholder for an absent display value.
// Readers never fail on missing fields; they show "—" instead.
func OrDash(v string) string {
	return CoalesceStr(v, "—")
}
