// Package flash implements one-shot status messages carried in the session.
// Handlers append messages; the next rendered page drains the queue, so each
// message is shown exactly once.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionKey = "_flashes"

// Severity levels, matched by the templates' styling classes.
const (
	LevelSuccess = "success"
	LevelDanger  = "danger"
	LevelInfo    = "info"
)

// Message is a severity-tagged status string.
type Message struct {
	Level string
	Text  string
}

func init() {
	// The session store gob-encodes values, so the slice type must be
	// registered before first use.
	gob.Register([]Message{})
}

// Add appends a message to the session's flash queue.
func Add(c *gin.Context, level, text string) {
	session := sessions.Default(c)
	queue, _ := session.Get(sessionKey).([]Message)
	queue = append(queue, Message{Level: level, Text: text})
	session.Set(sessionKey, queue)
	_ = session.Save()
}

// Take drains and clears the queue. Returns nil when there is nothing queued.
func Take(c *gin.Context) []Message {
	session := sessions.Default(c)
	queue, _ := session.Get(sessionKey).([]Message)
	if queue == nil {
		return nil
	}
	session.Delete(sessionKey)
	_ = session.Save()
	return queue
}
