package store

import (
	"strings"
	"testing"

	"talkfeed/app/talk"
)

func TestValidateClean(t *testing.T) {
	result := Validate(testData())

	if !result.Valid() {
		t.Errorf("Expected no errors, got %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
}

func TestValidateMissingCategory(t *testing.T) {
	data := testData()
	data.Feed[0].Category = ""

	result := Validate(data)

	if !result.Valid() {
		t.Error("Missing category should not be an error")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "no category") {
		t.Errorf("Expected a missing-category warning, got %v", result.Warnings)
	}
}

func TestValidateMissingFeedback(t *testing.T) {
	data := testData()
	data.Feed[0].Feedback = nil

	result := Validate(data)

	if !result.Valid() {
		t.Error("Missing feedback should not be an error")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "no feedback") {
		t.Errorf("Expected a missing-feedback warning, got %v", result.Warnings)
	}
}

func TestValidateFeedbackWithoutRating(t *testing.T) {
	data := testData()
	data.Feed[0].Feedback = append(data.Feed[0].Feedback, talk.Feedback{
		Username: "anna",
		Comment:  "forgot to rate this one but the talk was quite interesting overall",
	})

	result := Validate(data)

	if result.Valid() {
		t.Fatal("Feedback without rating should be an error")
	}

	if !strings.Contains(result.Errors[0], "anna") {
		t.Errorf("Error should name the user, got %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], "...") {
		t.Errorf("Long comments should be truncated in the error, got %q", result.Errors[0])
	}
}
