package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"ai-mockinterview-be/internal/constant"
	"ai-mockinterview-be/internal/dto"
	"ai-mockinterview-be/internal/entity"
	"ai-mockinterview-be/internal/pkg/logger"
	"ai-mockinterview-be/internal/repository/specification"
	"ai-mockinterview-be/internal/repository/unitofwork"
	"ai-mockinterview-be/pkg/embedding"
	"ai-mockinterview-be/pkg/interview"
	"ai-mockinterview-be/pkg/llm"
	"ai-mockinterview-be/pkg/retrieval"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type IInterviewService interface {
	Start(ctx context.Context, userId uuid.UUID) (*dto.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, userId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	History(ctx context.Context, userId, sessionId uuid.UUID) (*dto.InterviewHistoryResponse, error)
	Reset(ctx context.Context, userId uuid.UUID) (*dto.ResetInterviewResponse, error)
}

type interviewService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	llmProvider       llm.LLMProvider
	publisherService  IPublisherService
	logger            logger.ILogger

	// serializes mutating flows: keyed by session id for answers and by
	// user id for starts and resets, so a user never races two active
	// sessions into existence. History does not contend.
	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) IInterviewService {
	return &interviewService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		publisherService:  publisherService,
		logger:            log,
		locks:             make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *interviewService) lockFor(key uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *interviewService) Start(ctx context.Context, userId uuid.UUID) (*dto.StartInterviewResponse, error) {
	// Held across the existing-session check and the create, so concurrent
	// starts for one user collapse onto a single active session.
	lock := s.lockFor(userId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	resume, err := uow.DocumentRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByDocumentType{Type: constant.DocumentTypeResume},
	)
	if err != nil {
		return nil, err
	}
	jobDescription, err := uow.DocumentRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByDocumentType{Type: constant.DocumentTypeJobDescription},
	)
	if err != nil {
		return nil, err
	}
	if resume == nil || jobDescription == nil {
		return nil, dto.ErrDocumentsMissing
	}

	// Restart is idempotent: an active session is returned as-is.
	existing, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		messages, err := s.loadMessages(ctx, uow, existing.Id)
		if err != nil {
			return nil, err
		}
		return &dto.StartInterviewResponse{
			SessionId: existing.Id,
			Messages:  toMessageDTOs(messages),
		}, nil
	}

	prompt := interview.FirstQuestionPrompt(interview.Excerpt(jobDescription.FullText, constant.JobDescriptionExcerpt))
	firstQuestion, err := s.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: constant.MessageRoleSystem, Content: constant.SingleQuestionSystemPrompt},
			{Role: constant.MessageRoleUser, Content: prompt},
		},
		llm.WithTemperature(constant.InterviewTemperature),
		llm.WithMaxTokens(constant.FirstQuestionMaxTokens),
	)
	if err != nil {
		return nil, &dto.UpstreamError{Op: "first question generation", Err: err}
	}
	firstQuestion = strings.TrimSpace(firstQuestion)

	session := &entity.InterviewSession{
		Id:                       uuid.New(),
		UserId:                   userId,
		ResumeDocumentId:         resume.Id,
		JobDescriptionDocumentId: jobDescription.Id,
		QuestionCount:            1,
		IsActive:                 true,
		CreatedAt:                time.Now(),
	}

	messages := []*entity.InterviewMessage{
		{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      constant.MessageRoleSystem,
			Content:   constant.InterviewerSystemPrompt,
			CreatedAt: time.Now(),
		},
		{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      constant.MessageRoleAssistant,
			Content:   firstQuestion,
			CreatedAt: time.Now(),
		},
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.InterviewSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.InterviewMessageRepository().CreateBulk(ctx, messages); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("InterviewService", "Interview started", map[string]interface{}{"session_id": session.Id, "user_id": userId})

	return &dto.StartInterviewResponse{
		SessionId: session.Id,
		Messages:  toMessageDTOs(messages),
	}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, userId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	lock := s.lockFor(req.SessionId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, dto.ErrSessionNotFound
	}

	var (
		resume         *entity.Document
		jobDescription *entity.Document
		queryResult    *embedding.Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resume, err = uow.DocumentRepository().FindOne(gctx,
			specification.ByID{ID: session.ResumeDocumentId},
			specification.WithChunks{},
		)
		return err
	})
	g.Go(func() error {
		var err error
		jobDescription, err = uow.DocumentRepository().FindOne(gctx,
			specification.ByID{ID: session.JobDescriptionDocumentId},
			specification.WithChunks{},
		)
		return err
	})
	g.Go(func() error {
		var err error
		queryResult, err = s.embeddingProvider.Generate(gctx, req.Message)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if resume == nil || jobDescription == nil {
		return nil, dto.ErrDocumentsMissing
	}

	matches := retrieval.FindTopK(queryResult.Values,
		[]retrieval.Document{toRetrievalDocument(resume), toRetrievalDocument(jobDescription)},
		constant.RetrievalTopK,
	)

	previous, err := s.loadMessages(ctx, uow, session.Id)
	if err != nil {
		return nil, err
	}

	userMessage := &entity.InterviewMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      constant.MessageRoleUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}

	history := make([]llm.Message, 0, len(previous)+1)
	for _, m := range previous {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}
	history = append(history, llm.Message{Role: userMessage.Role, Content: userMessage.Content})

	isFinal := session.QuestionCount >= constant.InterviewQuestionLimit

	var (
		aiResponse string
		score      *int
		citations  []*entity.MessageCitation
	)

	if isFinal {
		pairs := interview.ExtractQAPairs(history)
		prompt := interview.EvaluationPrompt(pairs, interview.FormatContext(matches))
		aiResponse, err = s.llmProvider.Chat(ctx,
			[]llm.Message{
				{Role: constant.MessageRoleSystem, Content: constant.EvaluationSystemPrompt},
				{Role: constant.MessageRoleUser, Content: prompt},
			},
			llm.WithTemperature(constant.InterviewTemperature),
			llm.WithMaxTokens(constant.EvaluationMaxTokens),
		)
		if err != nil {
			return nil, &dto.UpstreamError{Op: "interview evaluation", Err: err}
		}
		score = interview.ExtractOverallScore(aiResponse)
		session.IsActive = false
	} else {
		window := history
		if len(window) > constant.HistoryWindow {
			window = window[len(window)-constant.HistoryWindow:]
		}
		excerpt := interview.Excerpt(jobDescription.FullText, constant.JobDescriptionExcerpt)
		prompt := interview.NextQuestionPrompt(excerpt, window)
		aiResponse, err = s.llmProvider.Chat(ctx,
			[]llm.Message{
				{Role: constant.MessageRoleSystem, Content: constant.NextQuestionSystemPrompt},
				{Role: constant.MessageRoleUser, Content: prompt},
			},
			llm.WithTemperature(constant.InterviewTemperature),
			llm.WithMaxTokens(constant.NextQuestionMaxTokens),
		)
		if err != nil {
			return nil, &dto.UpstreamError{Op: "next question generation", Err: err}
		}
		session.QuestionCount++
	}

	assistantMessage := &entity.InterviewMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      constant.MessageRoleAssistant,
		Content:   aiResponse,
		Score:     score,
		CreatedAt: time.Now(),
	}

	if isFinal {
		for _, match := range matches {
			citations = append(citations, &entity.MessageCitation{
				Id:           uuid.New(),
				MessageId:    assistantMessage.Id,
				DocumentId:   match.DocumentId,
				DocumentType: match.DocumentType,
				ChunkIndex:   match.ChunkIndex,
				Text:         interview.TruncateCitation(match.Text, constant.CitationTruncateLength),
				CreatedAt:    time.Now(),
			})
		}
	}

	// The full transition is computed above; persistence happens once.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.InterviewMessageRepository().CreateBulk(ctx, []*entity.InterviewMessage{userMessage, assistantMessage}); err != nil {
		return nil, err
	}
	if len(citations) > 0 {
		if err := uow.InterviewMessageRepository().CreateCitations(ctx, citations); err != nil {
			return nil, err
		}
	}
	if err := uow.InterviewSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if queryResult.Degraded {
		s.logger.Warn("InterviewService", "Query embedding degraded to fallback", map[string]interface{}{"session_id": session.Id})
	}

	response := &dto.SubmitAnswerResponse{
		Response:      aiResponse,
		IsComplete:    isFinal,
		QuestionCount: session.QuestionCount,
	}

	if isFinal {
		response.Score = score
		for _, match := range matches {
			response.Citations = append(response.Citations, dto.ResultCitationDTO{
				Type:      match.DocumentType,
				Text:      interview.TruncateCitation(match.Text, constant.CitationTruncateLength),
				Relevance: int(math.Round(match.Similarity * 100)),
			})
		}
		s.publishCompleted(ctx, session)
	}

	return response, nil
}

func (s *interviewService) publishCompleted(ctx context.Context, session *entity.InterviewSession) {
	payload, err := json.Marshal(dto.PublishInterviewCompletedMessage{
		SessionId: session.Id,
		UserId:    session.UserId,
	})
	if err != nil {
		s.logger.Error("InterviewService", "Failed to marshal completion event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error("InterviewService", "Failed to publish completion event", map[string]interface{}{"session_id": session.Id, "error": err.Error()})
	}
}

func (s *interviewService) History(ctx context.Context, userId, sessionId uuid.UUID) (*dto.InterviewHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, dto.ErrSessionNotFound
	}

	messages, err := s.loadMessages(ctx, uow, session.Id)
	if err != nil {
		return nil, err
	}

	messageIds := make([]uuid.UUID, len(messages))
	for i, m := range messages {
		messageIds[i] = m.Id
	}
	citations, err := uow.InterviewMessageRepository().FindCitationsByMessageIds(ctx, messageIds)
	if err != nil {
		return nil, err
	}
	citationsByMessage := make(map[uuid.UUID][]*entity.MessageCitation)
	for _, c := range citations {
		citationsByMessage[c.MessageId] = append(citationsByMessage[c.MessageId], c)
	}

	dtos := toMessageDTOs(messages)
	for i, m := range messages {
		for _, c := range citationsByMessage[m.Id] {
			dtos[i].Citations = append(dtos[i].Citations, dto.MessageCitationDTO{
				Type:       c.DocumentType,
				ChunkIndex: c.ChunkIndex,
				Text:       c.Text,
			})
		}
	}

	return &dto.InterviewHistoryResponse{
		SessionId: session.Id,
		IsActive:  session.IsActive,
		Messages:  dtos,
	}, nil
}

func (s *interviewService) Reset(ctx context.Context, userId uuid.UUID) (*dto.ResetInterviewResponse, error) {
	lock := s.lockFor(userId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.InterviewSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, session := range sessions {
		if err := uow.InterviewMessageRepository().DeleteBySessionId(ctx, session.Id); err != nil {
			return nil, err
		}
		if err := uow.InterviewSessionRepository().Delete(ctx, session.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("InterviewService", fmt.Sprintf("Reset %d active session(s)", len(sessions)), map[string]interface{}{"user_id": userId})

	return &dto.ResetInterviewResponse{
		Message:      "Interview session reset successfully",
		DeletedCount: len(sessions),
	}, nil
}

func (s *interviewService) loadMessages(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) ([]*entity.InterviewMessage, error) {
	return uow.InterviewMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
}

func toMessageDTOs(messages []*entity.InterviewMessage) []dto.InterviewMessageDTO {
	dtos := make([]dto.InterviewMessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = dto.InterviewMessageDTO{
			Role:      m.Role,
			Content:   m.Content,
			Score:     m.Score,
			CreatedAt: m.CreatedAt,
		}
	}
	return dtos
}

func toRetrievalDocument(doc *entity.Document) retrieval.Document {
	chunks := make([]retrieval.Chunk, len(doc.Chunks))
	for i, c := range doc.Chunks {
		chunks[i] = retrieval.Chunk{
			Index:      c.ChunkIndex,
			Text:       c.Text,
			PageNumber: c.PageNumber,
			Embedding:  c.Embedding,
		}
	}
	return retrieval.Document{
		Id:     doc.Id,
		Type:   doc.Type,
		Chunks: chunks,
	}
}
