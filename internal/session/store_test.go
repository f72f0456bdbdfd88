package session

import (
	"testing"

	"github.com/praveen/legalbot/internal/format"
	"github.com/praveen/legalbot/internal/models"
)

func TestStore_AppendOrder(t *testing.T) {
	store := NewStore()

	store.AppendQuestion("first question")
	store.AppendAnswer(format.Format("first answer"))
	store.AppendQuestion("second question")

	msgs := store.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}

	wantKinds := []models.MessageKind{models.Question, models.Answer, models.Question}
	for i, want := range wantKinds {
		if msgs[i].Kind != want {
			t.Errorf("message %d kind = %v, want %v", i, msgs[i].Kind, want)
		}
	}
	if store.QuestionCount() != 2 {
		t.Errorf("QuestionCount = %d, want 2", store.QuestionCount())
	}
}

func TestStore_MessageIDsUnique(t *testing.T) {
	store := NewStore()
	a := store.AppendQuestion("q")
	b := store.AppendAnswer(format.Format("a"))
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestStore_DeleteTopic_DoesNotTouchMessages(t *testing.T) {
	store := NewStore()

	store.AppendQuestion("q1")
	store.AppendTopic("topic one")
	store.AppendQuestion("q2")
	store.AppendTopic("topic two")

	store.DeleteTopic(0)

	topics := store.Topics()
	if len(topics) != 1 || topics[0].Label != "topic two" {
		t.Errorf("topics after delete = %+v", topics)
	}

	// Chat log is unchanged: deleting history never removes bubbles
	msgs := store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages after topic delete = %d, want 2", len(msgs))
	}
	if msgs[0].Text != "q1" || msgs[1].Text != "q2" {
		t.Error("message order changed after topic delete")
	}
}

func TestStore_DeleteTopic_OutOfRange(t *testing.T) {
	store := NewStore()
	store.AppendTopic("only")

	store.DeleteTopic(-1)
	store.DeleteTopic(5)

	if len(store.Topics()) != 1 {
		t.Error("out-of-range delete modified the topic list")
	}
}

func TestStore_TopicsNeverExceedQuestions(t *testing.T) {
	store := NewStore()

	for i := 0; i < 4; i++ {
		store.AppendQuestion("q")
		store.AppendTopic("t")
	}
	store.DeleteTopic(1)
	store.DeleteTopic(1)

	if got, limit := len(store.Topics()), store.QuestionCount(); got > limit {
		t.Errorf("topics = %d exceeds questions = %d", got, limit)
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	store.AppendQuestion("q")
	store.AppendTopic("t")

	store.Messages()[0].Text = "mutated"
	store.Topics()[0].Label = "mutated"

	if store.Messages()[0].Text != "q" {
		t.Error("Messages returned shared backing storage")
	}
	if store.Topics()[0].Label != "t" {
		t.Error("Topics returned shared backing storage")
	}
}
