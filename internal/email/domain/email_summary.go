package domain

// SummaryRequest is one transcript to summarise under a user instruction.
type SummaryRequest struct {
	Transcript  string
	Instruction string
}

// Summary is the generated text handed back to the caller for editing.
type Summary struct {
	Text string
}
