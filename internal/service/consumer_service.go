package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-mockinterview-be/internal/constant"
	"ai-mockinterview-be/internal/dto"
	"ai-mockinterview-be/internal/pkg/mailer"
	"ai-mockinterview-be/internal/repository/specification"
	"ai-mockinterview-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishInterviewCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sending interview result email for session %s", payload.SessionId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[ERROR] User not found: %s", payload.UserId)
		msg.Ack() // User deleted? Ack.
		return
	}

	messages, err := uow.InterviewMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: payload.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to load messages for session %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}

	// The evaluation is the last assistant message; it carries the score.
	var evaluation string
	var score *int
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == constant.MessageRoleAssistant {
			evaluation = messages[i].Content
			score = messages[i].Score
			break
		}
	}
	if evaluation == "" {
		log.Printf("[ERROR] No evaluation found for session %s", payload.SessionId)
		msg.Ack()
		return
	}

	if err := cs.emailService.SendInterviewResult(user.Email, user.FullName, score, evaluation); err != nil {
		log.Printf("[ERROR] Failed to email interview result to %s: %v", user.Email, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Interview result emailed for session %s", payload.SessionId)
	msg.Ack()
}
