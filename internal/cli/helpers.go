package cli

import (
	"time"

	"github.com/fittrack/fittrack/internal/client"
)

var (
	session    *client.Session
	sessionURL string
)

// apiSession returns the process-wide session, rebuilding it if the
// target server changed. The session's query cache keeps the workout
// list warm across commands in the same process.
func apiSession() *client.Session {
	if session == nil || sessionURL != serverURL {
		cache := client.NewQueryCache(client.DefaultStaleAfter, nil)
		session = client.NewSession(client.New(serverURL), cache)
		sessionURL = serverURL
	}
	return session
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
