package adapter

import (
	"context"

	"gotur/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// LogNotifier writes user notices to the log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements ports.Notifier.
func (n *LogNotifier) Notify(_ context.Context, notice domain.Notice) {
	fields := []zap.Field{
		zap.String("kind", string(notice.Kind)),
		zap.String("title", notice.Title),
	}
	if notice.Kind == domain.NoticePermissionDenied {
		n.logger.Warn(notice.Message, fields...)
		return
	}
	n.logger.Info(notice.Message, fields...)
}
