package services

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

// ReminderDispatcher sweeps due reminders once a minute and marks them sent.
// Delivery transport is out of scope, the sweep only records the fact and
// logs it.
type ReminderDispatcher struct {
	cron *cron.Cron
}

func NewReminderDispatcher() *ReminderDispatcher {
	return &ReminderDispatcher{cron: cron.New()}
}

func (d *ReminderDispatcher) Start() error {
	_, err := d.cron.AddFunc("* * * * *", d.sweep)
	if err != nil {
		return err
	}
	d.cron.Start()
	return nil
}

func (d *ReminderDispatcher) Stop() {
	d.cron.Stop()
}

func (d *ReminderDispatcher) sweep() {
	now := time.Now()

	var due []models.Reminder
	if err := config.DB.
		Where("is_sent = ? AND remind_at <= ?", false, now).
		Find(&due).Error; err != nil {
		config.Logger.Errorw("reminder sweep failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	ids := make([]string, 0, len(due))
	for _, reminder := range due {
		ids = append(ids, reminder.ID)
	}
	if err := config.DB.Model(&models.Reminder{}).
		Where("id IN ?", ids).
		Update("is_sent", true).Error; err != nil {
		config.Logger.Errorw("reminder mark-sent failed", "error", err)
		return
	}

	for _, reminder := range due {
		config.Logger.Infow("reminder dispatched",
			"reminderID", reminder.ID,
			"homeworkID", reminder.HomeworkID,
			"remindAt", reminder.RemindAt,
		)
	}
}
