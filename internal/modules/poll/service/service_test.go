package service

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/domain"
	"github.com/reshetovitsme/group-moderator-bot/internal/modules/poll/repository"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/errors"
	"github.com/reshetovitsme/group-moderator-bot/internal/shared/storage"
)

var now = time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

func TestVote_OncePerVoter(t *testing.T) {
	s := New(repository.New(storage.NewMemory()))
	p := s.Create("g1", "Pizza?", now)

	if _, err := s.Vote(p.ID, "u1", domain.ChoiceYes); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}
	votes, err := s.Vote(p.ID, "u1", domain.ChoiceNo)
	if !stderrors.Is(err, errors.ErrAlreadyVoted) {
		t.Fatalf("Second vote err = %v, want ErrAlreadyVoted", err)
	}
	if votes != (domain.Votes{Yes: 1}) {
		t.Errorf("Votes changed by duplicate vote: %+v", votes)
	}
}

func TestVote_UnknownPoll(t *testing.T) {
	s := New(repository.New(storage.NewMemory()))
	if _, err := s.Vote("nope", "u1", domain.ChoiceYes); !stderrors.Is(err, errors.ErrPollNotFound) {
		t.Errorf("err = %v, want ErrPollNotFound", err)
	}
}

func TestResults(t *testing.T) {
	s := New(repository.New(storage.NewMemory()))
	p := s.Create("g1", "Ship it?", now)

	r, err := s.Results(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if r.Total != 0 || r.YesPercent != 0 || r.NoPercent != 0 {
		t.Errorf("Empty poll results = %+v", r)
	}

	s.Vote(p.ID, "a", domain.ChoiceYes)
	s.Vote(p.ID, "b", domain.ChoiceYes)
	s.Vote(p.ID, "c", domain.ChoiceNo)

	r, _ = s.Results(p.ID)
	if r.Yes != 2 || r.No != 1 || r.YesPercent != 67 || r.NoPercent != 33 {
		t.Errorf("Results = %+v", r)
	}
}

func TestTally_RoundsHalfUp(t *testing.T) {
	p := &domain.Poll{Votes: domain.Votes{Yes: 1, No: 1}}
	if r := p.Tally(); r.YesPercent != 50 || r.NoPercent != 50 {
		t.Errorf("Tally = %+v", r)
	}

	p = &domain.Poll{Votes: domain.Votes{Yes: 1, No: 7}}
	if r := p.Tally(); r.YesPercent != 13 || r.NoPercent != 88 {
		t.Errorf("Tally = %+v", r)
	}
}

func TestCreate_RegeneratesOnCollision(t *testing.T) {
	s := New(repository.New(storage.NewMemory()))
	ids := []string{"aaaa1111", "aaaa1111", "bbbb2222"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first := s.Create("g1", "one", now)
	second := s.Create("g1", "two", now)
	if first.ID != "aaaa1111" || second.ID != "bbbb2222" {
		t.Errorf("ids = %s, %s", first.ID, second.ID)
	}
	if s.Count() != 2 {
		t.Errorf("Count = %d", s.Count())
	}
}

func TestFlush_KeepsVoters(t *testing.T) {
	backend := storage.NewMemory()
	s := New(repository.New(backend))
	p := s.Create("g1", "Tea?", now)
	s.Vote(p.ID, "u1", domain.ChoiceNo)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	reloaded := New(repository.New(backend))
	if _, err := reloaded.Vote(p.ID, "u1", domain.ChoiceYes); !stderrors.Is(err, errors.ErrAlreadyVoted) {
		t.Errorf("Voter set lost on reload: %v", err)
	}
}
