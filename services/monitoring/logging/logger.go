package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"log/syslog"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logrusSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// maxLoggedBody caps request bodies copied into the access log.
const maxLoggedBody = 250

type Logger struct {
	*logrus.Logger
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func NewLogger(c *utils.Config) *Logger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.JSONFormatter{PrettyPrint: c.Env == "development"})

	if c.Papertrail != "" {
		hook, err := logrusSyslog.NewSyslogHook("udp", c.Papertrail, syslog.LOG_INFO, c.PapertrailAppName)
		if err != nil {
			log.WithError(err).Error("Unable to connect to Papertrail")
		} else {
			log.Hooks.Add(hook)
		}
	}

	return &Logger{
		log,
	}
}

// NewNopLogger discards everything. Tests use it.
func NewNopLogger() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{log}
}

func (l *Logger) LoggingMiddleWare() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = c.GetRawData()
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   statusCode,
			"duration": duration,
		}

		if user, err := utils.GetActiveUser(c); err == nil {
			fields["user_id"] = user.UserID
			fields["user_role"] = user.Role
		}

		// Only log request body if it's small to avoid polluting logs with large payloads
		if len(requestBody) > 0 && len(requestBody) < maxLoggedBody {
			var requestJson interface{}
			if err := json.Unmarshal(requestBody, &requestJson); err != nil {
				l.Log(logrus.DebugLevel, "error unmarshalling requestBody, request may not be JSON")
			} else {
				fields["request"] = requestJson
			}
		}

		entry := l.WithFields(fields)
		switch {
		case statusCode >= 500:
			var responseJson interface{}
			if err := json.Unmarshal(w.body.Bytes(), &responseJson); err == nil {
				entry = entry.WithField("response", responseJson)
			}
			entry.Error("Request-Response")
		case statusCode >= 400:
			entry.Warn("Request-Response")
		default:
			entry.Info("Request-Response")
		}
	}
}
