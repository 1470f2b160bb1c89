package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"jdservices/models"

	"github.com/hibiken/asynq"
)

// TypeLeadNotify is the asynq task type for lead alert emails.
const TypeLeadNotify = "lead:notify"

// QueueNotifier enqueues lead alerts for background delivery.
type QueueNotifier struct {
	client *asynq.Client
}

func NewQueueNotifier(client *asynq.Client) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (n *QueueNotifier) EnqueueLeadAlert(sub models.EstimateSubmission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal lead payload: %w", err)
	}
	task := asynq.NewTask(TypeLeadNotify, payload)
	if _, err := n.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("failed to enqueue lead alert: %w", err)
	}
	return nil
}
