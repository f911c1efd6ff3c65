// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package room

import (
	"github.com/mchan/voteroom/question"
)

// UpdateQuestion replaces the room's current question with a new one in the
// open state and broadcasts the change.
func (r *Room) UpdateQuestion(prompt string, options []string, style question.Style) (question.Description, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := question.New(prompt, options, style)
	if err != nil {
		return question.Description{}, err
	}
	r.question = q
	d := q.Describe()
	r.connections.enqueue(event{question: d})

	r.log.Info("question updated", "question", d.ID, "style", d.Style)
	return d, nil
}

// RemoveQuestion clears the current question and broadcasts the deletion.
// It returns false if there was no question to remove.
func (r *Room) RemoveQuestion() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.question == nil {
		return false
	}
	r.question = nil
	r.connections.enqueue(event{deleted: true})

	r.log.Info("question removed")
	return true
}

// CurrentQuestion returns a snapshot of the current question, if any.
func (r *Room) CurrentQuestion() (question.Description, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.question == nil {
		return question.Description{}, false
	}
	return r.question.Describe(), true
}

// questionLocked resolves a question id against the current question.
func (r *Room) questionLocked(id string) (*question.Question, error) {
	if r.question == nil {
		return nil, ErrMissingActiveQuestion
	}
	if r.question.ID() != id {
		return nil, ErrQuestionNotFound
	}
	return r.question, nil
}

// SetQuestionState drives the question's lifecycle and broadcasts the new
// state.
func (r *Room) SetQuestionState(id string, next question.State) (question.Description, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := r.questionLocked(id)
	if err != nil {
		return question.Description{}, err
	}
	if err := q.SetState(next); err != nil {
		return question.Description{}, err
	}
	d := q.Describe()
	r.connections.enqueue(event{question: d})

	r.log.Info("question state changed", "question", id, "state", next)
	return d, nil
}

// RegisterVote records a participant's ballot on the current question.
func (r *Room) RegisterVote(id, participantToken string, v question.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasParticipantLocked(participantToken) {
		return ErrInvalidParticipantToken
	}
	q, err := r.questionLocked(id)
	if err != nil {
		return err
	}
	return q.RegisterVote(participantToken, v)
}

// QuestionResult tallies the current question.
func (r *Room) QuestionResult(id string) (question.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := r.questionLocked(id)
	if err != nil {
		return question.Result{}, err
	}
	return q.Result(), nil
}

// QuestionVoteCount returns the number of distinct participants with a
// recorded ballot.
func (r *Room) QuestionVoteCount(id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := r.questionLocked(id)
	if err != nil {
		return 0, err
	}
	return q.VoteCount(), nil
}
