package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// agentReviewer drives the review agent for one resume at a time. Each call
// gets its own agent session so reviews never share state.
type agentReviewer struct {
	appName        string
	agentRunner    *runner.Runner
	sessionService session.Service
}

func newAgentReviewer(apiKey, modelName string) (*agentReviewer, error) {
	reviewer, err := GetAgent(apiKey, "resume reviewer", modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %v", err)
	}

	inMemoryService := session.InMemoryService()

	r, err := runner.New(runner.Config{
		AppName:        reviewer.Name(),
		Agent:          reviewer,
		SessionService: inMemoryService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %v", err)
	}

	return &agentReviewer{
		appName:        reviewer.Name(),
		agentRunner:    r,
		sessionService: inMemoryService,
	}, nil
}

func (a *agentReviewer) Review(ctx context.Context, resumeText string) (*ReviewResult, error) {
	agentSession, err := a.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   a.appName,
		UserID:    uuid.NewString(),
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent session: %w", err)
	}
	defer func() {
		err := a.sessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   agentSession.Session.AppName(),
			UserID:    agentSession.Session.UserID(),
			SessionID: agentSession.Session.ID(),
		})
		if err != nil {
			log.Printf("⚠️ failed to delete agent session: %v", err)
		}
	}()

	msg := fmt.Sprintf("Resume:\n%s", resumeText)

	finalOutput, streamErr := retry(2,
		func() (string, error) {
			stream := a.agentRunner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
				Role: "user",
				Parts: []*genai.Part{
					{Text: msg},
				},
			}, agent.RunConfig{})

			var output string
			for event, err := range stream {
				if err != nil {
					return "", err
				}
				if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
					output = event.Content.Parts[0].Text
				}
			}

			if output == "" {
				return "", fmt.Errorf("empty agent response")
			}
			return output, nil
		})
	if streamErr != nil {
		return nil, fmt.Errorf("agent stream error: %w", streamErr)
	}

	result := &ReviewResult{}
	cleaned := CleanJson(finalOutput)
	if err := json.Unmarshal([]byte(cleaned), result); err != nil {
		return nil, fmt.Errorf("json unmarshal error: %w", err)
	}
	return result, nil
}
