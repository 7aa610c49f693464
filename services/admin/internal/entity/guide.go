package entity

type GuideSection struct {
	Title string   `json:"title"`
	Path  string   `json:"path"`
	Steps []string `json:"steps"`
}
