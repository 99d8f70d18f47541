package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadolammi/resumechat/internal/assistant"
	"github.com/muhammadolammi/resumechat/internal/chat"
)

// runREPL drives a single-session terminal chat. A failed turn prints as an
// advisor message and the loop keeps going.
func runREPL(a *assistant.Assistant, reviewer resumeReviewer, maxHistory int, resumePath string) {
	ctx := context.Background()
	sess := chat.NewSession(maxHistory)

	if resumePath != "" {
		data, err := os.ReadFile(resumePath)
		if err != nil {
			log.Fatalf("error reading resume file: %v", err)
		}
		md, err := a.LoadResume(sess, filepath.Base(resumePath), data)
		if err != nil {
			log.Fatalf("error loading resume: %v", err)
		}
		if md == "" {
			fmt.Println("The resume contained no extractable text.")
		} else {
			fmt.Printf("Loaded resume %s.\n", filepath.Base(resumePath))
		}
	}

	fmt.Println("resumechat advisor. Ask a career question, or use `load <path>`, `review`, `clear`, `quit`.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "":
			continue
		case input == "quit" || input == "exit" || input == "bye":
			fmt.Println("Advisor: Good luck out there!")
			return
		case input == "clear":
			sess.Reset()
			fmt.Println("Advisor: Conversation cleared.")
			continue
		case input == "review":
			replReview(ctx, reviewer, sess)
			continue
		case strings.HasPrefix(input, "load "):
			replLoad(a, sess, strings.TrimSpace(strings.TrimPrefix(input, "load ")))
			continue
		}

		reply, err := a.Chat(ctx, sess, input)
		if err != nil {
			fmt.Println("Advisor: " + userMessage(err))
			continue
		}
		fmt.Println("Advisor: " + reply)
	}
}

func replLoad(a *assistant.Assistant, sess *chat.Session, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Advisor: Could not read %s: %v\n", path, err)
		return
	}
	md, err := a.LoadResume(sess, filepath.Base(path), data)
	if err != nil {
		fmt.Println("Advisor: " + userMessage(err))
		return
	}
	if md == "" {
		fmt.Println("Advisor: That document contained no extractable text, so I kept the previous resume.")
		return
	}
	fmt.Printf("Advisor: Loaded resume %s. Ask me anything about it.\n", filepath.Base(path))
}

func replReview(ctx context.Context, reviewer resumeReviewer, sess *chat.Session) {
	if reviewer == nil {
		fmt.Println("Advisor: Resume review is not configured.")
		return
	}
	_, text, ok := sess.Resume()
	if !ok {
		fmt.Println("Advisor: Load a resume first, then ask for a review.")
		return
	}
	result, err := reviewer.Review(ctx, text)
	if err != nil {
		log.Printf("⚠️ resume review failed: %v", err)
		fmt.Println("Advisor: The review failed. Try again in a moment.")
		return
	}
	printReview(result)
}

func printReview(r *ReviewResult) {
	fmt.Println("Advisor: Here is the review of your resume.")
	printReviewSection("Strengths", r.Strengths)
	printReviewSection("Weak areas", r.WeakAreas)
	printReviewSection("Suggestions", r.Suggestions)
	if r.Summary != "" {
		fmt.Println("\nSummary:")
		fmt.Println("  " + r.Summary)
	}
}

func printReviewSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Println("  - " + item)
	}
}
