package router

import (
	"fmt"
	"strings"

	"github.com/akshit-shetty/eduops-assistant/internal/session"
)

// smallTalk answers greetings and other conversational pleasantries
// before any matching happens. Matching is exact or whole-prefix, so
// "hi" greets but "high cgpa" falls through to the catalog.
func smallTalk(utterance string, sctx *session.Context) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	lower = strings.TrimRight(lower, "!. ")

	greet := "there"
	if sctx.DisplayName != "" {
		greet = sctx.DisplayName
	}

	if name, ok := introducedName(utterance, lower); ok {
		sctx.DisplayName = name
		return fmt.Sprintf("Nice to meet you, %s! Ask me anything about learners, cohorts, grades or dissertations.", name), true
	}

	switch {
	case matchAny(lower, "hi", "hello", "hey", "good morning", "good afternoon", "good evening"):
		return fmt.Sprintf("Hello %s! 👋 I can answer questions about learners, cohorts, grades and dissertations. What would you like to know?", greet), true
	case matchAny(lower, "bye", "goodbye", "see you", "farewell"):
		return "Goodbye! Come back any time you need the numbers.", true
	case matchAny(lower, "thanks", "thank you", "thx"):
		return "You're welcome! Anything else you'd like to look up?", true
	case matchAny(lower, "how are you"):
		return "Doing great and ready to dig through the data. What can I find for you?", true
	case matchAny(lower, "who are you", "what are you"):
		return `I'm the EduOps assistant. I turn questions like "how many students are active" into answers from the student database.`, true
	}
	return "", false
}

func matchAny(lower string, terms ...string) bool {
	for _, term := range terms {
		if lower == term || strings.HasPrefix(lower, term+" ") {
			return true
		}
	}
	return false
}

// introducedName picks the display name out of "my name is ...".
func introducedName(utterance, lower string) (string, bool) {
	const prefix = "my name is "
	if !strings.HasPrefix(lower, prefix) {
		return "", false
	}
	name := strings.TrimSpace(utterance[len(prefix):])
	name = strings.TrimRight(name, "!. ")
	if name == "" {
		return "", false
	}
	return name, true
}
