package utils

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// NormalizeInput trims surrounding whitespace and lowercases the user answer
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TitleCase uppercases the first letter of each word and lowercases the rest, e.g. "new york" -> "New York"
func TitleCase(value string) string {
	words := strings.Fields(value)
	for idx, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[idx] = string(runes)
	}
	return strings.Join(words, " ")
}

// GetConfigFile returns the content of the file located in filepath
func GetConfigFile(filepath string) ([]byte, error) {
	configFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer configFile.Close()

	configFileBytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return configFileBytes, nil
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
