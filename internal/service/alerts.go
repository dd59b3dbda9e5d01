package service

import (
	"context"
	"time"

	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/tracking"
	"github.com/sirupsen/logrus"
)

const alertTimeout = 10 * time.Second

// BreakPolicyAlerter возвращает обработчик, который сторож перерывов вызывает при
// принудительном завершении. Ошибки каналов только логируются.
func BreakPolicyAlerter(notifiers []AlertNotifier, logger *logrus.Logger) func(models.BreakPolicyViolation) {
	return func(v models.BreakPolicyViolation) {
		ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
		defer cancel()

		log := logger.WithFields(logrus.Fields{
			"service":       "alerts",
			"session_id":    v.SessionID,
			"employee_id":   v.EmployeeID,
			"time_entry_id": v.TimeEntryID,
		})
		for _, n := range notifiers {
			if err := n.NotifyBreakPolicy(ctx, v); err != nil {
				metrics.IncNotifyFailure(n.Name())
				log.WithError(err).WithField("notifier", n.Name()).Error("Failed to deliver break policy alert")
			}
		}
	}
}

// ViolationNotifiers приводит каналы оповещений к интерфейсу отслеживания
func ViolationNotifiers(notifiers []AlertNotifier) []tracking.Notifier {
	out := make([]tracking.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		out = append(out, n)
	}
	return out
}
