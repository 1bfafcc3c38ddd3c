package models

import "strconv"

// Question is a single quiz question. Immutable once received; CorrectIndex
// is withheld by the server until the question resolves.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex,omitempty"`
}

// SequenceIndex parses the question id as its 0-indexed position in the
// game's question sequence. The server uses the sequence index as the id, so
// this is the join key between MyTurnRecord and AnswerAttempt entries.
func (q Question) SequenceIndex() (int, bool) {
	i, err := strconv.Atoi(q.ID)
	if err != nil {
		return 0, false
	}
	return i, true
}

// PlaceholderQuestion returns a stand-in for a question the server withheld
// at game start, keyed by its sequence index.
func PlaceholderQuestion(index int) Question {
	return Question{
		ID:      strconv.Itoa(index),
		Text:    "Question #" + strconv.Itoa(index+1),
		Options: []string{"-", "-", "-", "-"},
	}
}
