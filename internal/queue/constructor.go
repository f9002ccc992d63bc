package queue

import (
	"github.com/maheshrc27/creatordash/internal/repository"
	"github.com/maheshrc27/creatordash/internal/service"
)

type Queue struct {
	cr repository.ContentRepository
	ar repository.ActivityRepository
	ps service.ProfileService
}

func NewQueue(
	cr repository.ContentRepository,
	ar repository.ActivityRepository,
	ps service.ProfileService) *Queue {
	return &Queue{
		cr: cr,
		ar: ar,
		ps: ps,
	}
}

const TaskTypeContentReminder = "content:reminder"

type ContentReminderPayload struct {
	ContentID int64 `json:"content_id"`
}
