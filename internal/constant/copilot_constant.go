package constant

const (
	// Progress and next-step markers exposed on the conversation API.
	NextStepAnswerQuestions    = "answer_questions"
	NextStepDocumentGeneration = "document_generation"
	NextStepReviewAndDownload  = "review_and_download"
	NextStepReviewAnalysis     = "review_analysis"

	StatusGenerating = "generating"

	ProgressGatheringInfo      = 25
	ProgressGeneratingDocument = 75
	ProgressDocumentReady      = 100

	TimeRemainingGatheringInfo      = "5-10 minutes"
	TimeRemainingGeneratingDocument = "2-3 minutes"
	TimeRemainingNone               = "0 minutes"

	// Greeting format arguments: lowercased template name, time estimate.
	CopilotGreetingFormat = "Hi! I'm April, and I'm excited to help you create a professional %s. This usually takes about %s, and I'll guide you through each step."

	// Upload acknowledgement format argument: original filename.
	CopilotUploadAnalyzedFormat = "I've analyzed your %s. Here's what I found:"

	CopilotFollowUpMessage = "Great! I have some follow-up questions to make sure your document is perfectly tailored to your business."

	CopilotGeneratingMessage = "Perfect! I have all the information I need. Let me create your document now. This will take about 2-3 minutes..."

	CopilotImprovingMessage = "Perfect! I'll now create an improved version of your document based on my analysis and your input. This will take about 2-3 minutes..."

	CopilotDocumentReadyMessage = "Your document is ready! You can download it below, and I'm here if you need any adjustments."

	CopilotStatusReadyMessage = "Your document is ready for download!"
)
