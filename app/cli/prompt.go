package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"talkfeed/app/talk"
)

type prompter struct {
	reader *bufio.Reader
}

func newPrompter() *prompter {
	return &prompter{reader: bufio.NewReader(os.Stdin)}
}

func (p *prompter) ask(prompt string) string {
	fmt.Printf("%s: ", prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		return ""
	}

	return strings.TrimSpace(line)
}

func (p *prompter) confirm(prompt string) bool {
	answer := strings.ToLower(p.ask(prompt + " [Y/n]"))
	return answer == "" || answer == "y" || answer == "yes"
}

// promptForFeedback asks for a rating and optional comment. Returns nil
// when the user skips by entering nothing.
func (p *prompter) promptForFeedback(username string) *talk.Feedback {
	ratingInput := p.ask("Rate this talk (1-5, Enter to skip)")
	if ratingInput == "" {
		return nil
	}

	rating, err := strconv.Atoi(ratingInput)
	if err != nil || ValidateRating(rating) != nil {
		fmt.Fprintln(os.Stderr, "Invalid rating (must be 1-5). Skipping.")
		return nil
	}

	comment := SanitizeComment(p.ask("Comment (optional, Enter to skip)"))

	feedback := &talk.Feedback{Rating: &rating, Comment: comment}

	if username != "" {
		sanitized, err := SanitizeUsername(username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid username: %v\n", err)
		} else {
			feedback.Username = sanitized
		}
	}

	return feedback
}
