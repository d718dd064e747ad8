package dialog

import "strings"

// Command is one of the fixed slash commands understood by the bot.
type Command string

const (
	CommandHelp         Command = "/help"
	CommandRegistration Command = "/registration"
	CommandCancel       Command = "/cancel"
	CommandStart        Command = "/start"
	CommandAdd          Command = "/add"
	CommandDone         Command = "/done"
	CommandDelete       Command = "/delete"
	CommandTasks        Command = "/tasks"
)

// Button labels of the persistent reply keyboard. Each maps 1:1 to a
// slash command and never carries an argument.
const (
	ButtonAdd      = "Add"
	ButtonTasks    = "My tasks"
	ButtonComplete = "Complete"
	ButtonDelete   = "Delete"
)

var commands = map[string]Command{
	string(CommandHelp):         CommandHelp,
	string(CommandRegistration): CommandRegistration,
	string(CommandCancel):       CommandCancel,
	string(CommandStart):        CommandStart,
	string(CommandAdd):          CommandAdd,
	string(CommandDone):         CommandDone,
	string(CommandDelete):       CommandDelete,
	string(CommandTasks):        CommandTasks,
}

var buttons = map[string]Command{
	ButtonAdd:      CommandAdd,
	ButtonTasks:    CommandTasks,
	ButtonComplete: CommandDone,
	ButtonDelete:   CommandDelete,
}

type inputKind int

const (
	inputFreeText inputKind = iota
	inputCommand
	inputButton
)

// input is the result of classifying one inbound text exactly once per
// event: a slash command with an optional argument, a keyboard button,
// or free text.
type input struct {
	kind    inputKind
	command Command
	arg     string
}

// classify splits the text on the first space and matches the head
// against the command vocabulary by exact string equality. The whole
// text is matched against the button labels; anything else is free text.
func classify(text string) input {
	head, arg := text, ""
	if i := strings.IndexByte(text, ' '); i >= 0 {
		head, arg = text[:i], text[i+1:]
	}
	if cmd, ok := commands[head]; ok {
		return input{kind: inputCommand, command: cmd, arg: arg}
	}
	if cmd, ok := buttons[text]; ok {
		return input{kind: inputButton, command: cmd}
	}
	return input{kind: inputFreeText}
}

// isPosition reports whether the target is a bare non-negative integer,
// which selects a task by list position instead of by title.
func isPosition(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
