package models

type ProfileField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ProfileSection struct {
	Title  string         `json:"title"`
	Fields []ProfileField `json:"fields"`
}

// CustomerProfile is the fixed risk context shown next to every analysis.
type CustomerProfile struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Sections    []ProfileSection `json:"sections"`
	Notes       []string         `json:"notes"`
}
