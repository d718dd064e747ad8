package reply

import (
	"testing"

	"github.com/taskgram/bot/domain"
)

func TestTaskListEmpty(t *testing.T) {
	if got := TaskList(nil); got != NoTasks {
		t.Fatalf("TaskList(nil) = %q, want %q", got, NoTasks)
	}
	if got := TaskList([]domain.Task{}); got != NoTasks {
		t.Fatalf("TaskList([]) = %q, want %q", got, NoTasks)
	}
}

func TestTaskListNumberingAndLabels(t *testing.T) {
	tasks := []domain.Task{
		{ID: 10, Title: "Buy milk"},
		{ID: 11, Title: "Call mom", Completed: true},
		{ID: 12, Title: "Walk dog"},
	}

	want := "Your tasks:\n" +
		"1. Buy milk - in progress.\n" +
		"2. Call mom - done.\n" +
		"3. Walk dog - in progress.\n"
	if got := TaskList(tasks); got != want {
		t.Fatalf("TaskList() = %q, want %q", got, want)
	}
}

func TestTaskListIsPure(t *testing.T) {
	tasks := []domain.Task{{ID: 1, Title: "same"}}
	if TaskList(tasks) != TaskList(tasks) {
		t.Fatalf("TaskList() not deterministic for identical input")
	}
}

func TestUploadAccepted(t *testing.T) {
	doc := UploadAccepted(domain.AttachmentDocument, "http://x/get-doc/1")
	if doc != "Document uploaded! Download link: http://x/get-doc/1" {
		t.Fatalf("document text = %q", doc)
	}
	photo := UploadAccepted(domain.AttachmentPhoto, "http://x/get-photo/1")
	if photo != "Photo uploaded! Download link: http://x/get-photo/1" {
		t.Fatalf("photo text = %q", photo)
	}
}
