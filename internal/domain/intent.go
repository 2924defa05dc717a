package domain

// IntentSet marks which kinds of information the user asked for.
// A value used downstream never has both fields false: when no
// explicit cue matches, classification defaults to both.
type IntentSet struct {
	Weather bool `json:"weather"`
	Places  bool `json:"places"`
}
