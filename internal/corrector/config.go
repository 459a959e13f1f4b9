package corrector

type CorrectorConfig struct {
	MaxEditDistance int `yaml:"max_edit_distance"`
	PrefixLength    int `yaml:"prefix_length"`
	CountThreshold  int `yaml:"count_threshold"`
}

func DefaultConfig() CorrectorConfig {
	return CorrectorConfig{
		MaxEditDistance: 2,
		PrefixLength:    7,
		CountThreshold:  1,
	}
}

type SuggestionInfo struct {
	Token       string   `json:"token"`
	Suggestions []string `json:"suggestions"`
	Correction  string   `json:"correction"`
}
