package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// Terminal asks the operator questions. On a real terminal it uses promptui;
// piped or scripted input is read line by line.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// set only when both ends are a TTY
	ttyIn  *os.File
	ttyOut *os.File
}

func New(in io.Reader, out io.Writer) *Terminal {
	term := &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}

	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)

	if inOK && outOK && isTerminal(inFile) && isTerminal(outFile) {
		term.ttyIn = inFile
		term.ttyOut = outFile
	}

	return term
}

// Interactive reports whether prompts go through promptui.
func (that *Terminal) Interactive() bool {
	return that.ttyIn != nil
}

// Confirm - asks a yes/no question. An empty answer picks defaultYes.
func (that *Terminal) Confirm(question string, defaultYes bool) (bool, error) {
	if that.Interactive() {
		return that.confirmTTY(question, defaultYes)
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	answer, err := that.readLine(fmt.Sprintf("❓ %s %s ", question, hint))
	if err != nil {
		return false, err
	}

	return acceptAnswer(answer, defaultYes), nil
}

// Ask - prints the question and reads one line of free text.
func (that *Terminal) Ask(question string) (string, error) {
	if _, err := fmt.Fprintln(that.out, "🔑 "+question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if that.Interactive() {
		prompt := promptui.Prompt{
			Label:  "🔑",
			Stdin:  that.ttyIn,
			Stdout: that.ttyOut,
		}

		answer, err := prompt.Run()
		if err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}

		return strings.TrimSpace(answer), nil
	}

	return that.readLine("🔑: ")
}

func (that *Terminal) confirmTTY(question string, defaultYes bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     "❓ " + question,
		IsConfirm: true,
		Stdin:     that.ttyIn,
		Stdout:    that.ttyOut,
	}

	if defaultYes {
		prompt.Default = "y"
	}

	_, err := prompt.Run()

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
}

func (that *Terminal) readLine(text string) (string, error) {
	if _, err := fmt.Fprint(that.out, text); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := that.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// acceptAnswer - only the explicit opposite of the default flips the answer.
func acceptAnswer(answer string, defaultYes bool) bool {
	answer = strings.ToLower(answer)

	if defaultYes {
		return answer != "n"
	}

	return answer == "y"
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
