package constant

const (
	LLMRoleUser   = "user"
	LLMRoleSystem = "system"

	QuizGenerationSystemPrompt = `You are an expert educator creating study questions.
Your task is to generate high-quality questions that test understanding and recall of the provided notes.
Always respond with valid JSON only, no markdown formatting.`

	QuizTypeInstructionMCQ          = "Generate only multiple choice questions with 4 options each."
	QuizTypeInstructionFreeResponse = "Generate only free-response/open-ended questions."
	QuizTypeInstructionMixed        = "Generate a mix of multiple choice and free-response questions."

	// QuizGenerationPromptTemplate expects: num_questions, type instruction,
	// custom instruction block, notes content.
	QuizGenerationPromptTemplate = `Based on the following notes, generate exactly %d study questions.
%s
%s
NOTES:
%s

Respond with a JSON array of questions in this exact format:
[
  {
    "question_type": "mcq",
    "question_text": "What is...",
    "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
    "correct_answer": "A) Option 1",
    "explanation": "This is correct because..."
  },
  {
    "question_type": "free_response",
    "question_text": "Explain how...",
    "options": null,
    "correct_answer": "The expected answer covers...",
    "explanation": "Key points to include are..."
  }
]

Return ONLY the JSON array, no other text.`

	RecallAnalysisSystemPrompt = `You are an expert educator analyzing a student's recall attempt.
Compare what they remembered against the original notes and provide detailed, constructive feedback.
Always respond with valid JSON only, no markdown formatting.`

	// RecallAnalysisPromptTemplate expects: original notes, user recall.
	RecallAnalysisPromptTemplate = `Compare the student's recall attempt against the original notes and analyze their understanding.

ORIGINAL NOTES:
%s

STUDENT'S RECALL ATTEMPT:
%s

Analyze their recall and respond with JSON in this exact format:
{
  "score": 75,
  "correct_points": [
    "The student correctly remembered that...",
    "They accurately recalled..."
  ],
  "missed_points": [
    {
      "topic": "Topic they missed",
      "explanation": "The notes mentioned that... This is important because..."
    }
  ],
  "inaccuracies": [
    {
      "what_they_said": "Student's inaccurate statement",
      "correction": "The correct information is...",
      "explanation": "This matters because..."
    }
  ],
  "suggestions": [
    "To improve retention, consider...",
    "Focus more on..."
  ],
  "summary": "Overall assessment of their recall performance..."
}

The score should be a percentage (0-100) based on how much of the key information they recalled correctly.
Return ONLY the JSON object, no other text.`

	RecallFallbackSuggestion = "Unable to analyze recall. Please try again."
	RecallFallbackSummary    = "Analysis failed due to a processing error."
)
