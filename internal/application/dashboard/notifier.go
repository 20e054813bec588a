package dashboard

import "go.uber.org/zap"

// LogNotifier reports mutation outcomes through the structured log.
// The HTTP surface additionally carries the message in the response, so
// this is the server-side record of what the user was told.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier writing to the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Success implements Notifier.
func (n *LogNotifier) Success(msg string) {
	n.logger.Info(msg)
}

// Failure implements Notifier.
func (n *LogNotifier) Failure(msg string) {
	n.logger.Warn(msg)
}
