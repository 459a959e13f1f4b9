package symspell

// Suggestion is a dictionary word close to a looked-up term.
type Suggestion struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
	Count    int    `json:"count"`
}

// Suggestions sort by ascending distance, then by descending count.
type Suggestions []Suggestion

func (s Suggestions) Len() int      { return len(s) }
func (s Suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Suggestions) Less(i, j int) bool {
	if s[i].Distance == s[j].Distance {
		return s[i].Count > s[j].Count
	}
	return s[i].Distance < s[j].Distance
}
