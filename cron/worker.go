package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"niryaat/config"
	notificationRepo "niryaat/database/repository/notification"
	"niryaat/models"
	"niryaat/services/session"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeApprovalGranted = "approval:granted"

// ApprovalPayload is the task payload for an out-of-band approval event.
type ApprovalPayload struct {
	AccountID string `json:"accountId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisApprovalQueueDB,
	}
}

// NewApprovalClient creates the asynq client used to enqueue approval events.
func NewApprovalClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueApprovalGranted enqueues an approval event for an account.
func EnqueueApprovalGranted(client *asynq.Client, accountID string) error {
	payload, err := json.Marshal(ApprovalPayload{AccountID: accountID})
	if err != nil {
		return fmt.Errorf("failed to marshal approval payload: %w", err)
	}
	if _, err := client.Enqueue(asynq.NewTask(TypeApprovalGranted, payload)); err != nil {
		return fmt.Errorf("failed to enqueue approval event: %w", err)
	}
	return nil
}

// InitApprovalWorker runs the async worker in background. Approval events
// arrive out-of-band and race with in-flight navigation; the worker only
// refreshes the affected live sessions, and the policy evaluator reads the
// session's current state on every decision.
func InitApprovalWorker(registry *session.Registry, notifRepo notificationRepo.NotificationRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeApprovalGranted, handleApprovalTask(registry, notifRepo))

	go func() {
		log.Println("[ApprovalWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ApprovalWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ApprovalWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleApprovalTask(registry *session.Registry, notifRepo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ApprovalPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ApprovalHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ApprovalHandler] Approval granted for account %s", p.AccountID)

		// Live sessions re-fetch the profile; the next policy evaluation
		// observes the approved state without re-authentication.
		registry.RefreshAccount(p.AccountID)

		notification := &models.Notification{
			ID:        uuid.New().String(),
			AccountID: p.AccountID,
			Title:     "Account approved",
			Message:   "Your account has been approved. All platform features are now available.",
			Type:      "approval",
		}
		if err := notifRepo.Create(notification); err != nil {
			log.Printf("[ApprovalHandler] Failed to create notification: %v", err)
			return err
		}
		return nil
	}
}
