package gateway

import "go.uber.org/zap"

// LogNotifier is the production notification collaborator: fire-and-forget
// messages land in the structured log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.With(zap.String("component", "notifier"))}
}

func (n *LogNotifier) Success(msg string) {
	n.log.Info("Notification", zap.String("level", "success"), zap.String("message", msg))
}

func (n *LogNotifier) Error(msg string) {
	n.log.Warn("Notification", zap.String("level", "error"), zap.String("message", msg))
}

func (n *LogNotifier) Info(msg string) {
	n.log.Info("Notification", zap.String("level", "info"), zap.String("message", msg))
}
