// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// conversation.go - The optional YAML file with the texts the terminal
// session shows around the responder's answers.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conversation holds the texts of a terminal session.
type Conversation struct {
	Greeting  string   `yaml:"greeting"`
	Farewell  string   `yaml:"farewell"`
	Prompt    string   `yaml:"prompt"`
	ExitWords []string `yaml:"exit_words"`
}

// DefaultConversation returns the texts used when no file overrides them.
func DefaultConversation(botName string) Conversation {
	return Conversation{
		Greeting: "Welcome to the " + botName + " System.\n" +
			"Please tell us about your problem.\n" +
			"We will assist you with any problem you might have.\n" +
			"Please type 'bye' to exit our system.",
		Farewell:  "Nice talking to you. Bye...",
		Prompt:    "> ",
		ExitWords: []string{"bye"},
	}
}

// LoadConversation reads the conversation file at path over the defaults.
// The file is optional: if it does not exist the defaults are returned.
func LoadConversation(path, botName string) (Conversation, error) {
	conv := DefaultConversation(botName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conv, nil
		}
		return conv, fmt.Errorf("error reading conversation file: %w", err)
	}

	var file Conversation
	if err := yaml.Unmarshal(data, &file); err != nil {
		return conv, fmt.Errorf("error parsing YAML: %w", err)
	}

	if file.Greeting != "" {
		conv.Greeting = strings.TrimRight(file.Greeting, "\n")
	}
	if file.Farewell != "" {
		conv.Farewell = strings.TrimRight(file.Farewell, "\n")
	}
	if file.Prompt != "" {
		conv.Prompt = file.Prompt
	}
	if len(file.ExitWords) > 0 {
		conv.ExitWords = make([]string, 0, len(file.ExitWords))
		for _, w := range file.ExitWords {
			conv.ExitWords = append(conv.ExitWords, strings.ToLower(w))
		}
	}
	return conv, nil
}

// IsExit reports whether any of words is an exit word.
func (c Conversation) IsExit(words map[string]struct{}) bool {
	for _, w := range c.ExitWords {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}
