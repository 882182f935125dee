package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"

	DocumentTypeResume         = "resume"
	DocumentTypeJobDescription = "job_description"
)

// Interview policy. These defaults are load-bearing: the question/answer
// pairing, citation emission and completion detection all assume a
// 3-question interview with top-2 retrieval.
const (
	InterviewQuestionLimit = 3
	RetrievalTopK          = 2

	ChunkMaxWords          = 500
	JobDescriptionExcerpt  = 2000 // chars of the JD fed into question prompts
	HistoryWindow          = 4    // trailing messages included in next-question prompts
	CitationTruncateLength = 200

	FirstQuestionMaxTokens = 150
	NextQuestionMaxTokens  = 200
	EvaluationMaxTokens    = 1000
	InterviewTemperature   = 0.7
)

const (
	// InterviewCompletedTopic carries completion events to the result mailer.
	InterviewCompletedTopic = "interview.completed"
)

const (
	InterviewerSystemPrompt = "You are conducting a job interview based on the provided job description. Ask questions one at a time and provide feedback after each answer."

	SingleQuestionSystemPrompt = "You are an interviewer. You MUST ask only ONE question at a time. Never list multiple questions."

	NextQuestionSystemPrompt = "You are an experienced technical interviewer. Ask questions one at a time without providing feedback yet."

	EvaluationSystemPrompt = "You are an experienced technical interviewer providing comprehensive feedback on a complete interview."
)
