// Package reply renders task lists and canned bot answers. Every
// function is pure: the same input always yields the same text.
package reply

import (
	"fmt"
	"strings"

	"github.com/taskgram/bot/domain"
)

// Fixed answer texts. The dispatcher picks among these; the transport
// sends them verbatim.
const (
	Help = "Available commands:\n" +
		"/cancel - cancel the current command\n" +
		"/registration - register your account\n" +
		"/add <title> - add a task\n" +
		"/tasks - list your open tasks\n" +
		"/done <title or number> - mark a task as done\n" +
		"/delete <title> - delete a task"

	Start = "Hello! Use the buttons below to manage your tasks, " +
		"or type /help to see the available commands."

	Registration = "Registration is temporarily unavailable."

	Cancelled = "Command cancelled."

	PromptAddTitle     = "Enter the task title."
	PromptDoneTarget   = "Enter the title or number of the task to complete."
	PromptDeleteTarget = "Enter the title of the task to delete."

	EmptyTitle = "The task title cannot be empty."

	TaskCompleted = "Task completed!"
	TaskDeleted   = "Task deleted!"
	TaskNotFound  = "No such task. Check /tasks and try again."

	NoTasks = "You have no tasks, enjoy your day!"

	InactiveUser = "Register or activate your account before uploading content."
	BusyUser     = "Cancel the current command with /cancel before sending files."
	UploadFailed = "Unfortunately the upload failed. Please try again later."

	UnknownError = "Unknown error! Type /cancel and try again."

	GenericFailure = "Something went wrong, please try again later."
)

// TaskAdded confirms a creation, echoing the stored title.
func TaskAdded(title string) string {
	return "Task added: " + title
}

// UploadAccepted confirms a document or photo upload with its
// download link.
func UploadAccepted(kind domain.AttachmentKind, link string) string {
	if kind == domain.AttachmentPhoto {
		return "Photo uploaded! Download link: " + link
	}
	return "Document uploaded! Download link: " + link
}

// TaskList renders open tasks as a 1-based numbered list with a status
// label per line, or the fixed no-tasks message for an empty sequence.
func TaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return NoTasks
	}
	var sb strings.Builder
	sb.WriteString("Your tasks:\n")
	for i := range tasks {
		fmt.Fprintf(&sb, "%d. %s - %s.\n", i+1, tasks[i].Title, tasks[i].StatusLabel())
	}
	return sb.String()
}
