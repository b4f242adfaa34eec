// Package model defines the data structures used in the hnPush application, including Story and Notification. A Story is a single Hacker News entry resolved from the top-stories list; a Notification is the unit submitted to the push relay.
package model

// Story is one entry from the Hacker News top-stories ranking.
// URL may be empty for text-only posts; such stories are skipped.
// Summary is best-effort and may be empty.
type Story struct {
	ID      int
	Title   string
	URL     string
	Score   int
	Summary string
}

// Notification is the payload submitted to the notification relay.
// ClickURL, when set, tells the receiving client which page to open
// when the user interacts with the notification.
type Notification struct {
	Title    string
	Tags     string
	Body     string
	ClickURL string
}
