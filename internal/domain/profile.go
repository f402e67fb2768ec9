package domain

// Profile describes the owner of the service, served from /me.
type Profile struct {
	Name            string   `json:"name"`
	Homepage        string   `json:"homepage"`
	GitHubURL       string   `json:"githubURL"`
	InterestingFact string   `json:"interestingFact"`
	Skills          []string `json:"skills"`
}
