package model

// Preferences holds per-user UI preferences stored server-side.
type Preferences struct {
	Theme            string `json:"theme"`
	Language         string `json:"language"`
	RefreshInterval  int    `json:"refreshInterval"`
	NotifyOnFailures bool   `json:"notifyOnFailures"`
}
