package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FromGin creates a logger carrying the authenticated user and request id
// set by the auth and request-id middleware.
func FromGin(c *gin.Context) *Logger {
	l := New()

	fields := logrus.Fields{}
	if email := c.GetString("email"); email != "" {
		fields["user"] = email
	}
	if reqID := c.GetString("request_id"); reqID != "" {
		fields["request_id"] = reqID
	}
	if len(fields) > 0 {
		l.Entry = l.Entry.WithFields(fields)
	}
	return l
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}
