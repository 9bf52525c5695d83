// Package wizard walks a user through the recommendation questions one step at a time and
// scores the answers once the last step is confirmed.
//
// A Session is driven by user actions and is not safe for concurrent use.
package wizard

import (
	"errors"
	"fmt"
	"slices"

	"incotermFinder/business/recommendation"
	"incotermFinder/domain"
	"incotermFinder/pkg/logger"
)

type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	ErrAlreadyStarted = errors.New("wizard already started")
	ErrNotInProgress  = errors.New("wizard is not in progress")
	ErrAnswerRequired = errors.New("current question has no answer")
	ErrAtFirstStep    = errors.New("wizard is at the first step")
)

// Scorer turns a complete answer set into recommendations.
type Scorer func(domain.WizardAnswer) ([]domain.Recommendation, error)

type Session struct {
	score     Scorer
	questions []domain.WizardQuestion

	state           State
	step            int
	answers         domain.WizardAnswer
	recommendations []domain.Recommendation
}

// NewSession returns a session in StateNotStarted. A nil scorer uses recommendation.Score.
func NewSession(score Scorer) *Session {
	if score == nil {
		score = recommendation.Score
	}
	return &Session{
		score:     score,
		questions: recommendation.Questions(),
	}
}

func (s *Session) Start() error {
	if s.state != StateNotStarted {
		return ErrAlreadyStarted
	}
	s.state = StateInProgress
	s.step = 0
	return nil
}

func (s *Session) State() State { return s.state }

// Step is the zero-based index of the current question; it equals TotalSteps once complete.
func (s *Session) Step() int { return s.step }

func (s *Session) TotalSteps() int { return len(s.questions) }

func (s *Session) Answers() domain.WizardAnswer { return s.answers }

// Recommendations is nil until the session is complete.
func (s *Session) Recommendations() []domain.Recommendation {
	if s.state != StateComplete {
		return nil
	}
	return slices.Clone(s.recommendations)
}

func (s *Session) CurrentQuestion() (domain.WizardQuestion, bool) {
	if s.state != StateInProgress || s.step >= len(s.questions) {
		return domain.WizardQuestion{}, false
	}
	return s.questions[s.step], true
}

// SetAnswer records an answer for any question; answers for earlier steps may be changed.
func (s *Session) SetAnswer(questionID, value string) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}

	answers, err := recommendation.WithAnswer(s.answers, questionID, value)
	if err != nil {
		return err
	}
	s.answers = answers
	return nil
}

func (s *Session) CanGoNext() bool {
	q, ok := s.CurrentQuestion()
	if !ok {
		return false
	}
	return recommendation.AnswerFor(s.answers, q.ID) != ""
}

// Next advances one step. On the last step it scores the answers and completes the session;
// if scoring fails the session stays on the last step.
func (s *Session) Next() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if !s.CanGoNext() {
		return ErrAnswerRequired
	}

	if s.step < len(s.questions)-1 {
		s.step++
		return nil
	}

	recs, err := s.score(s.answers)
	if err != nil {
		return fmt.Errorf("score answers: %w", err)
	}

	s.recommendations = recs
	s.state = StateComplete
	s.step = len(s.questions)

	logger.Debug("wizard_complete", "result_count", len(recs))

	return nil
}

// Prev steps back one question, discarding any recommendations.
func (s *Session) Prev() error {
	if s.state == StateNotStarted || s.step == 0 {
		return ErrAtFirstStep
	}
	s.step--
	s.state = StateInProgress
	s.recommendations = nil
	return nil
}

// Reset clears every answer and returns to StateNotStarted.
func (s *Session) Reset() {
	s.state = StateNotStarted
	s.step = 0
	s.answers = domain.WizardAnswer{}
	s.recommendations = nil
}
